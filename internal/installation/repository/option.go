package repository

type UpsertInstallationOptions struct {
	UserID         string
	InstallationID int64
	AccountLogin   string
}

type GetOneInstallationOptions struct {
	ID             string
	UserID         string
	InstallationID int64
}

type ListInstallationsOptions struct {
	UserID string
}
