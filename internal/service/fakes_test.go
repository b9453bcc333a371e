package service

import (
	"context"
	"errors"
	"io"
	"sort"

	"chatbot-platform-be/internal/entity"
	"chatbot-platform-be/internal/repository/contract"
	"chatbot-platform-be/internal/repository/specification"
	"chatbot-platform-be/internal/repository/unitofwork"
	"chatbot-platform-be/pkg/filestore"
	"chatbot-platform-be/pkg/llm"

	"github.com/google/uuid"
)

// specFilter is the in-memory interpretation of the query specifications
// the real repositories translate to SQL.
type specFilter struct {
	id         *uuid.UUID
	email      *string
	userId     *uuid.UUID
	projectId  *uuid.UUID
	activeOnly bool
	orderDesc  bool
	limit      int
}

func parseSpecs(specs []specification.Specification) specFilter {
	f := specFilter{}
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			f.id = &id
		case specification.ByEmail:
			email := v.Email
			f.email = &email
		case specification.OwnedBy:
			userId := v.UserID
			f.userId = &userId
		case specification.ByProjectID:
			projectId := v.ProjectID
			f.projectId = &projectId
		case specification.ActiveOnly:
			f.activeOnly = true
		case specification.OrderBy:
			f.orderDesc = v.Desc
		case specification.Limit:
			f.limit = v.Count
		}
	}
	return f
}

// fakeUow backs every repository with plain slices. Begin returns the
// same instance; the tests never exercise rollback semantics.
type fakeUow struct {
	users    []entity.User
	projects []entity.Project
	prompts  []entity.Prompt
	sessions []entity.ChatSession
	files    []entity.FileRecord
}

func (u *fakeUow) Begin(ctx context.Context) (unitofwork.UnitOfWork, error) { return u, nil }
func (u *fakeUow) Commit() error                                           { return nil }
func (u *fakeUow) Rollback() error                                         { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository               { return &fakeUserRepo{u} }
func (u *fakeUow) ProjectRepository() contract.ProjectRepository         { return &fakeProjectRepo{u} }
func (u *fakeUow) PromptRepository() contract.PromptRepository           { return &fakePromptRepo{u} }
func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository { return &fakeSessionRepo{u} }
func (u *fakeUow) FileRepository() contract.FileRepository               { return &fakeFileRepo{u} }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

// --- user repository ---

type fakeUserRepo struct{ uow *fakeUow }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.uow.users = append(r.uow.users, *user)
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.uow.users[:0]
	for _, u := range r.uow.users {
		if u.Id != id {
			kept = append(kept, u)
		}
	}
	r.uow.users = kept
	return nil
}

func (r *fakeUserRepo) matches(u entity.User, f specFilter) bool {
	if f.id != nil && u.Id != *f.id {
		return false
	}
	if f.email != nil && u.Email != *f.email {
		return false
	}
	return true
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	f := parseSpecs(specs)
	for _, u := range r.uow.users {
		if r.matches(u, f) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	f := parseSpecs(specs)
	var n int64
	for _, u := range r.uow.users {
		if r.matches(u, f) {
			n++
		}
	}
	return n, nil
}

// --- project repository ---

type fakeProjectRepo struct{ uow *fakeUow }

func (r *fakeProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	r.uow.projects = append(r.uow.projects, *project)
	return nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	for i, p := range r.uow.projects {
		if p.Id == project.Id {
			r.uow.projects[i] = *project
			return nil
		}
	}
	return errors.New("project not stored")
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.uow.projects[:0]
	for _, p := range r.uow.projects {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	r.uow.projects = kept
	return nil
}

func (r *fakeProjectRepo) matches(p entity.Project, f specFilter) bool {
	if f.id != nil && p.Id != *f.id {
		return false
	}
	if f.userId != nil && p.UserId != *f.userId {
		return false
	}
	return true
}

func (r *fakeProjectRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error) {
	f := parseSpecs(specs)
	for _, p := range r.uow.projects {
		if r.matches(p, f) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error) {
	f := parseSpecs(specs)
	var result []*entity.Project
	for i := range r.uow.projects {
		if r.matches(r.uow.projects[i], f) {
			found := r.uow.projects[i]
			result = append(result, &found)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if f.orderDesc {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	if f.limit > 0 && len(result) > f.limit {
		result = result[:f.limit]
	}
	return result, nil
}

func (r *fakeProjectRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- prompt repository ---

type fakePromptRepo struct{ uow *fakeUow }

func (r *fakePromptRepo) Create(ctx context.Context, prompt *entity.Prompt) error {
	r.uow.prompts = append(r.uow.prompts, *prompt)
	return nil
}

func (r *fakePromptRepo) Update(ctx context.Context, prompt *entity.Prompt) error {
	for i, p := range r.uow.prompts {
		if p.Id == prompt.Id {
			r.uow.prompts[i] = *prompt
			return nil
		}
	}
	return errors.New("prompt not stored")
}

func (r *fakePromptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.uow.prompts[:0]
	for _, p := range r.uow.prompts {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	r.uow.prompts = kept
	return nil
}

func (r *fakePromptRepo) DeleteByProjectId(ctx context.Context, projectId uuid.UUID) error {
	kept := r.uow.prompts[:0]
	for _, p := range r.uow.prompts {
		if p.ProjectId != projectId {
			kept = append(kept, p)
		}
	}
	r.uow.prompts = kept
	return nil
}

func (r *fakePromptRepo) matches(p entity.Prompt, f specFilter) bool {
	if f.id != nil && p.Id != *f.id {
		return false
	}
	if f.projectId != nil && p.ProjectId != *f.projectId {
		return false
	}
	if f.activeOnly && !p.IsActive {
		return false
	}
	return true
}

func (r *fakePromptRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prompt, error) {
	f := parseSpecs(specs)
	for _, p := range r.uow.prompts {
		if r.matches(p, f) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakePromptRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prompt, error) {
	f := parseSpecs(specs)
	var result []*entity.Prompt
	for i := range r.uow.prompts {
		if r.matches(r.uow.prompts[i], f) {
			found := r.uow.prompts[i]
			result = append(result, &found)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if f.orderDesc {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	if f.limit > 0 && len(result) > f.limit {
		result = result[:f.limit]
	}
	return result, nil
}

func (r *fakePromptRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- chat session repository ---

type fakeSessionRepo struct{ uow *fakeUow }

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	r.uow.sessions = append(r.uow.sessions, *session)
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	for i, s := range r.uow.sessions {
		if s.Id == session.Id {
			r.uow.sessions[i] = *session
			return nil
		}
	}
	return errors.New("session not stored")
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.uow.sessions[:0]
	for _, s := range r.uow.sessions {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.uow.sessions = kept
	return nil
}

func (r *fakeSessionRepo) DeleteByProjectId(ctx context.Context, projectId uuid.UUID) error {
	kept := r.uow.sessions[:0]
	for _, s := range r.uow.sessions {
		if s.ProjectId != projectId {
			kept = append(kept, s)
		}
	}
	r.uow.sessions = kept
	return nil
}

func (r *fakeSessionRepo) matches(s entity.ChatSession, f specFilter) bool {
	if f.id != nil && s.Id != *f.id {
		return false
	}
	if f.projectId != nil && s.ProjectId != *f.projectId {
		return false
	}
	return true
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	f := parseSpecs(specs)
	for _, s := range r.uow.sessions {
		if r.matches(s, f) {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	f := parseSpecs(specs)
	var result []*entity.ChatSession
	for i := range r.uow.sessions {
		if r.matches(r.uow.sessions[i], f) {
			found := r.uow.sessions[i]
			result = append(result, &found)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if f.orderDesc {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	if f.limit > 0 && len(result) > f.limit {
		result = result[:f.limit]
	}
	return result, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- file repository ---

type fakeFileRepo struct{ uow *fakeUow }

func (r *fakeFileRepo) Create(ctx context.Context, file *entity.FileRecord) error {
	r.uow.files = append(r.uow.files, *file)
	return nil
}

func (r *fakeFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.uow.files[:0]
	for _, f := range r.uow.files {
		if f.Id != id {
			kept = append(kept, f)
		}
	}
	r.uow.files = kept
	return nil
}

func (r *fakeFileRepo) DeleteByProjectId(ctx context.Context, projectId uuid.UUID) error {
	kept := r.uow.files[:0]
	for _, f := range r.uow.files {
		if f.ProjectId != projectId {
			kept = append(kept, f)
		}
	}
	r.uow.files = kept
	return nil
}

func (r *fakeFileRepo) matches(file entity.FileRecord, f specFilter) bool {
	if f.id != nil && file.Id != *f.id {
		return false
	}
	if f.projectId != nil && file.ProjectId != *f.projectId {
		return false
	}
	return true
}

func (r *fakeFileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FileRecord, error) {
	f := parseSpecs(specs)
	for _, file := range r.uow.files {
		if r.matches(file, f) {
			found := file
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeFileRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FileRecord, error) {
	f := parseSpecs(specs)
	var result []*entity.FileRecord
	for i := range r.uow.files {
		if r.matches(r.uow.files[i], f) {
			found := r.uow.files[i]
			result = append(result, &found)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if f.orderDesc {
			return result[i].UploadedAt.After(result[j].UploadedAt)
		}
		return result[i].UploadedAt.Before(result[j].UploadedAt)
	})
	if f.limit > 0 && len(result) > f.limit {
		result = result[:f.limit]
	}
	return result, nil
}

func (r *fakeFileRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- provider fakes ---

type fakeLLM struct {
	reply      string
	err        error
	gotHistory []llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.gotHistory = history
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}})
}

type fakeFileStore struct {
	uploadErr error
	deleteErr error
	uploaded  []string
	deleted   []string
}

func (f *fakeFileStore) Upload(ctx context.Context, filename string, content io.Reader, purpose string) (*filestore.UploadedFile, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	data, _ := io.ReadAll(content)
	f.uploaded = append(f.uploaded, filename)
	return &filestore.UploadedFile{
		ExternalId: "file-ext-" + filename,
		Filename:   filename,
		Purpose:    purpose,
		SizeBytes:  int64(len(data)),
	}, nil
}

func (f *fakeFileStore) Delete(ctx context.Context, externalId string) error {
	f.deleted = append(f.deleted, externalId)
	return f.deleteErr
}
