package projects

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is a simple in-memory project repository for tests and
// early development.
type MemoryRepo struct {
	mu       sync.Mutex
	projects map[string]Project
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{projects: map[string]Project{}}
}

func (r *MemoryRepo) FindByID(_ context.Context, id string) (Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return Project{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryRepo) ListByOwner(_ context.Context, ownerID string) ([]Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Project, 0)
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryRepo) List(_ context.Context) ([]Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryRepo) Create(_ context.Context, p Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[p.ID] = p
	return nil
}

func (r *MemoryRepo) Update(_ context.Context, p Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[p.ID]; !ok {
		return ErrNotFound
	}
	r.projects[p.ID] = p
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func sortNewestFirst(ps []Project) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].CreatedAt.After(ps[j].CreatedAt) })
}
