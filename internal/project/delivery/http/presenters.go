package http

import (
	"buildbridge/internal/project"
	"buildbridge/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	RepoFullName   string `json:"repo_full_name"  binding:"required,min=3,max=255"`
	InstallationID int64  `json:"installation_id" binding:"required"`
	SelectedBranch string `json:"selected_branch" binding:"required,min=1,max=255"`
}

func (r createReq) validate() error {
	if _, _, ok := splitFullName(r.RepoFullName); !ok {
		return project.ErrInvalidRepoName
	}
	return nil
}

func (r createReq) toInput() project.CreateProjectInput {
	owner, repo, _ := splitFullName(r.RepoFullName)
	return project.CreateProjectInput{
		InstallationID: r.InstallationID,
		Owner:          owner,
		RepoName:       repo,
		SelectedBranch: r.SelectedBranch,
	}
}

// ---

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() project.ListProjectsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return project.ListProjectsInput{
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type updateReq struct {
	ID             string `json:"-"` // populated from URI param
	SelectedBranch string `json:"selected_branch" binding:"omitempty,min=1,max=255"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() project.UpdateProjectInput {
	return project.UpdateProjectInput{
		ID:             r.ID,
		SelectedBranch: r.SelectedBranch,
	}
}

// --- Response DTOs ---

type projectResp struct {
	ID               string            `json:"id"`
	InstallationID   int64             `json:"installation_id"`
	RepoFullName     string            `json:"repo_full_name"`
	SelectedBranch   string            `json:"selected_branch"`
	BuildProjectName string            `json:"build_project_name,omitempty"`
	BuildStatus      string            `json:"build_status"`
	CreatedAt        response.DateTime `json:"created_at"`
	UpdatedAt        response.DateTime `json:"updated_at"`
}

func newProjectResp(p project.Project) projectResp {
	return projectResp{
		ID:               p.ID,
		InstallationID:   p.InstallationID,
		RepoFullName:     p.Owner + "/" + p.RepoName,
		SelectedBranch:   p.SelectedBranch,
		BuildProjectName: p.BuildProjectName,
		BuildStatus:      string(p.BuildStatus),
		CreatedAt:        response.DateTime(p.CreatedAt),
		UpdatedAt:        response.DateTime(p.UpdatedAt),
	}
}

type createResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newCreateResp(out project.CreateProjectOutput) createResp {
	return createResp{Project: newProjectResp(out.Project)}
}

type listResp struct {
	Projects []projectResp `json:"projects"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListResp(out project.ListProjectsOutput) listResp {
	projects := make([]projectResp, len(out.Projects))
	for i, p := range out.Projects {
		projects[i] = newProjectResp(p)
	}
	return listResp{
		Projects: projects,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type detailResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newDetailResp(out project.DetailProjectOutput) detailResp {
	return detailResp{Project: newProjectResp(out.Project)}
}

type updateResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newUpdateResp(out project.UpdateProjectOutput) updateResp {
	return updateResp{Project: newProjectResp(out.Project)}
}
