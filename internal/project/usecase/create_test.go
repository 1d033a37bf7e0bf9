package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"buildbridge/internal/model"
	"buildbridge/internal/project"
	"buildbridge/internal/project/repository"
	"buildbridge/pkg/codebuild"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	getOneResult project.Project

	creates   []repository.CreateProjectOptions
	createErr error

	deletes []string
}

func (m *mockRepo) CreateProject(ctx context.Context, opt repository.CreateProjectOptions) (project.Project, error) {
	m.creates = append(m.creates, opt)
	if m.createErr != nil {
		return project.Project{}, m.createErr
	}
	return project.Project{
		ID:               "proj-1",
		UserID:           opt.UserID,
		InstallationID:   opt.InstallationID,
		Owner:            opt.Owner,
		RepoName:         opt.RepoName,
		SelectedBranch:   opt.SelectedBranch,
		BuildProjectName: opt.BuildProjectName,
		BuildStatus:      opt.BuildStatus,
	}, nil
}

func (m *mockRepo) GetOneProject(ctx context.Context, opt repository.GetOneProjectOptions) (project.Project, error) {
	return m.getOneResult, nil
}

func (m *mockRepo) ListProjects(ctx context.Context, opt repository.ListProjectsOptions) ([]project.Project, int, error) {
	return nil, 0, nil
}

func (m *mockRepo) UpdateProject(ctx context.Context, opt repository.UpdateProjectOptions) (project.Project, error) {
	return project.Project{ID: opt.ID, SelectedBranch: opt.SelectedBranch}, nil
}

func (m *mockRepo) DeleteProject(ctx context.Context, id string) error {
	m.deletes = append(m.deletes, id)
	return nil
}

func (m *mockRepo) ListBindings(ctx context.Context, opt repository.ListBindingsOptions) ([]project.BuildBinding, error) {
	return nil, nil
}

func (m *mockRepo) AppendPushHistory(ctx context.Context, opt repository.AppendPushHistoryOptions) error {
	return nil
}

type mockBuildService struct {
	createInputs []codebuild.CreateProjectInput
	createErr    error
	deletedNames []string
	deleteErr    error
}

func (m *mockBuildService) CreateProject(ctx context.Context, input codebuild.CreateProjectInput) (codebuild.Project, error) {
	m.createInputs = append(m.createInputs, input)
	if m.createErr != nil {
		return codebuild.Project{}, m.createErr
	}
	return codebuild.Project{Name: input.Name, Status: "ACTIVE"}, nil
}

func (m *mockBuildService) StartBuild(ctx context.Context, projectName, branch string) (codebuild.Build, error) {
	return codebuild.Build{}, nil
}

func (m *mockBuildService) GetBuildLogs(ctx context.Context, buildID string, opt codebuild.GetLogsOptions) (codebuild.LogPage, error) {
	return codebuild.LogPage{}, nil
}

func (m *mockBuildService) DeleteProject(ctx context.Context, projectName string) error {
	m.deletedNames = append(m.deletedNames, projectName)
	return m.deleteErr
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}
	input := project.CreateProjectInput{
		InstallationID: 42,
		Owner:          "octocat",
		RepoName:       "api",
		SelectedBranch: "main",
	}

	t.Run("provisions build definition and persists CREATED", func(t *testing.T) {
		repo := &mockRepo{}
		svc := &mockBuildService{}
		uc := New(repo, svc, &mockLogger{})

		out, err := uc.Create(ctx, sc, input)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		if len(svc.createInputs) != 1 {
			t.Fatalf("expected 1 provision call, got %d", len(svc.createInputs))
		}
		provisioned := svc.createInputs[0]
		if !strings.HasPrefix(provisioned.Name, "bb-octocat-api-") {
			t.Errorf("unexpected build project name: %q", provisioned.Name)
		}
		if provisioned.RepositoryURL != "https://github.com/octocat/api.git" {
			t.Errorf("unexpected repository url: %q", provisioned.RepositoryURL)
		}

		if len(repo.creates) != 1 {
			t.Fatalf("expected 1 insert, got %d", len(repo.creates))
		}
		if repo.creates[0].BuildStatus != project.BuildStatusCreated {
			t.Errorf("expected CREATED status, got %s", repo.creates[0].BuildStatus)
		}
		if out.Project.BuildProjectName != provisioned.Name {
			t.Errorf("output build project %q does not match provisioned %q",
				out.Project.BuildProjectName, provisioned.Name)
		}
	})

	t.Run("duplicate repo+branch is rejected before provisioning", func(t *testing.T) {
		repo := &mockRepo{getOneResult: project.Project{ID: "existing"}}
		svc := &mockBuildService{}
		uc := New(repo, svc, &mockLogger{})

		_, err := uc.Create(ctx, sc, input)
		if !errors.Is(err, project.ErrRepoAlreadyLinked) {
			t.Fatalf("expected ErrRepoAlreadyLinked, got %v", err)
		}
		if len(svc.createInputs) != 0 {
			t.Errorf("expected no provision call, got %d", len(svc.createInputs))
		}
		if len(repo.creates) != 0 {
			t.Errorf("expected no insert, got %d", len(repo.creates))
		}
	})

	t.Run("provisioning failure persists FAILED with empty build project", func(t *testing.T) {
		repo := &mockRepo{}
		svc := &mockBuildService{createErr: errors.New("quota exceeded")}
		uc := New(repo, svc, &mockLogger{})

		out, err := uc.Create(ctx, sc, input)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		if len(repo.creates) != 1 {
			t.Fatalf("expected 1 insert, got %d", len(repo.creates))
		}
		got := repo.creates[0]
		if got.BuildStatus != project.BuildStatusFailed || got.BuildProjectName != "" {
			t.Errorf("unexpected persisted options: %+v", got)
		}
		if out.Project.BuildStatus != project.BuildStatusFailed {
			t.Errorf("unexpected output status: %s", out.Project.BuildStatus)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("removes project and its build definition", func(t *testing.T) {
		repo := &mockRepo{getOneResult: project.Project{ID: "proj-1", BuildProjectName: "bb-octocat-api-1234"}}
		svc := &mockBuildService{}
		uc := New(repo, svc, &mockLogger{})

		if err := uc.Delete(ctx, sc, "proj-1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(svc.deletedNames) != 1 || svc.deletedNames[0] != "bb-octocat-api-1234" {
			t.Errorf("unexpected build definition deletes: %v", svc.deletedNames)
		}
		if len(repo.deletes) != 1 || repo.deletes[0] != "proj-1" {
			t.Errorf("unexpected project deletes: %v", repo.deletes)
		}
	})

	t.Run("build definition delete failure does not block the project delete", func(t *testing.T) {
		repo := &mockRepo{getOneResult: project.Project{ID: "proj-1", BuildProjectName: "bb-octocat-api-1234"}}
		svc := &mockBuildService{deleteErr: errors.New("service down")}
		uc := New(repo, svc, &mockLogger{})

		if err := uc.Delete(ctx, sc, "proj-1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(repo.deletes) != 1 {
			t.Errorf("expected project row deleted, got %v", repo.deletes)
		}
	})

	t.Run("unknown project is not found", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockBuildService{}, &mockLogger{})

		if err := uc.Delete(ctx, sc, "nope"); !errors.Is(err, project.ErrProjectNotFound) {
			t.Errorf("expected ErrProjectNotFound, got %v", err)
		}
	})
}
