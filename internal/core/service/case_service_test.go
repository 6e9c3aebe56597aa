package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

type stubCaseRepo struct {
	cases   map[uint]*domain.Case
	clients *stubClientRepo
	nextID  uint
}

func newStubCaseRepo(clients *stubClientRepo) *stubCaseRepo {
	return &stubCaseRepo{cases: make(map[uint]*domain.Case), clients: clients, nextID: 1}
}

func cloneCase(c *domain.Case) *domain.Case {
	if c == nil {
		return nil
	}
	clone := *c
	if c.NextHearing != nil {
		t := *c.NextHearing
		clone.NextHearing = &t
	}
	return &clone
}

func (r *stubCaseRepo) Create(_ context.Context, c *domain.Case) (*domain.Case, error) {
	copy := cloneCase(c)
	copy.ID = r.nextID
	r.nextID++
	r.cases[copy.ID] = cloneCase(copy)
	return copy, nil
}

func (r *stubCaseRepo) ListByOwner(_ context.Context, ownerID uint) ([]*domain.Case, error) {
	var out []*domain.Case
	for _, c := range r.cases {
		if c.CreatedByID == ownerID {
			out = append(out, cloneCase(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubCaseRepo) FindByID(_ context.Context, ownerID, id uint) (*domain.Case, error) {
	c, ok := r.cases[id]
	if !ok || c.CreatedByID != ownerID {
		return nil, domain.ErrCaseNotFound
	}
	return cloneCase(c), nil
}

func (r *stubCaseRepo) Update(_ context.Context, c *domain.Case) (*domain.Case, error) {
	r.cases[c.ID] = cloneCase(c)
	return cloneCase(c), nil
}

func (r *stubCaseRepo) Delete(_ context.Context, ownerID, id uint) error {
	c, ok := r.cases[id]
	if !ok || c.CreatedByID != ownerID {
		return domain.ErrCaseNotFound
	}
	delete(r.cases, id)
	return nil
}

func (r *stubCaseRepo) ListByClient(ctx context.Context, ownerID, clientID uint) ([]*domain.Case, error) {
	all, _ := r.ListByOwner(ctx, ownerID)
	var out []*domain.Case
	for _, c := range all {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCaseRepo) ListHearings(ctx context.Context, ownerID uint) ([]*domain.Case, error) {
	all, _ := r.ListByOwner(ctx, ownerID)
	var out []*domain.Case
	for _, c := range all {
		if c.NextHearing != nil {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NextHearing.Before(*out[j].NextHearing) })
	return out, nil
}

func (r *stubCaseRepo) ListForClientEmail(_ context.Context, email string) ([]*domain.Case, error) {
	var ids []uint
	for _, cl := range r.clients.clients {
		if cl.Email == email {
			ids = append(ids, cl.ID)
		}
	}
	var out []*domain.Case
	for _, c := range r.cases {
		for _, id := range ids {
			if c.ClientID == id {
				out = append(out, cloneCase(c))
				break
			}
		}
	}
	return out, nil
}

func (r *stubCaseRepo) CountByOwnerStatus(_ context.Context, ownerID uint, status string) (int64, error) {
	var n int64
	for _, c := range r.cases {
		if c.CreatedByID == ownerID && c.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubCaseRepo) CountUpcomingHearings(_ context.Context, ownerID uint, from time.Time) (int64, error) {
	var n int64
	for _, c := range r.cases {
		if c.CreatedByID == ownerID && c.NextHearing != nil && !c.NextHearing.Before(from) {
			n++
		}
	}
	return n, nil
}

func (r *stubCaseRepo) RecentByOwner(ctx context.Context, ownerID uint, limit int) ([]*domain.Case, error) {
	out, _ := r.ListByOwner(ctx, ownerID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubCaseRepo) UpcomingHearings(ctx context.Context, ownerID uint, from time.Time, limit int) ([]*domain.Case, error) {
	all, _ := r.ListHearings(ctx, ownerID)
	var out []*domain.Case
	for _, c := range all {
		if !c.NextHearing.Before(from) {
			out = append(out, c)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestCaseService_Create(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubCaseRepo(clients)
	svc := NewCaseService(repo, clients, zerolog.Nop())
	ctx := context.Background()

	client, _ := clients.Create(ctx, &domain.Client{FullName: "C", Email: "c@example.com", Active: true, CreatedByID: 1})

	created, err := svc.Create(ctx, 1, ports.CaseInput{ClientID: client.ID, CaseTitle: "Estate dispute"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != domain.CaseOpen {
		t.Fatalf("default status must be Open, got %s", created.Status)
	}
	if created.CreatedByID != 1 {
		t.Fatalf("owner must come from the caller, got %d", created.CreatedByID)
	}
}

func TestCaseService_Create_ForeignClient(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubCaseRepo(clients)
	svc := NewCaseService(repo, clients, zerolog.Nop())
	ctx := context.Background()

	foreign, _ := clients.Create(ctx, &domain.Client{FullName: "X", Active: true, CreatedByID: 2})

	if _, err := svc.Create(ctx, 1, ports.CaseInput{ClientID: foreign.ID, CaseTitle: "Nope"}); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestCaseService_Hearings(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubCaseRepo(clients)
	svc := NewCaseService(repo, clients, zerolog.Nop())
	ctx := context.Background()

	client, _ := clients.Create(ctx, &domain.Client{FullName: "C", Active: true, CreatedByID: 1})

	later := time.Now().AddDate(0, 0, 14)
	sooner := time.Now().AddDate(0, 0, 7)
	_, _ = svc.Create(ctx, 1, ports.CaseInput{ClientID: client.ID, CaseTitle: "No hearing"})
	_, _ = svc.Create(ctx, 1, ports.CaseInput{ClientID: client.ID, CaseTitle: "Later", NextHearing: &later})
	_, _ = svc.Create(ctx, 1, ports.CaseInput{ClientID: client.ID, CaseTitle: "Sooner", NextHearing: &sooner})

	hearings, err := svc.Hearings(ctx, 1)
	if err != nil {
		t.Fatalf("Hearings returned error: %v", err)
	}
	if len(hearings) != 2 {
		t.Fatalf("expected 2 cases with hearings, got %d", len(hearings))
	}
	if hearings[0].CaseTitle != "Sooner" {
		t.Fatalf("hearings must sort soonest first, got %s", hearings[0].CaseTitle)
	}
}

func TestCaseService_Update_ReassignsClientWithinOwner(t *testing.T) {
	clients := newStubClientRepo()
	repo := newStubCaseRepo(clients)
	svc := NewCaseService(repo, clients, zerolog.Nop())
	ctx := context.Background()

	a, _ := clients.Create(ctx, &domain.Client{FullName: "A", Active: true, CreatedByID: 1})
	b, _ := clients.Create(ctx, &domain.Client{FullName: "B", Active: true, CreatedByID: 1})
	foreign, _ := clients.Create(ctx, &domain.Client{FullName: "F", Active: true, CreatedByID: 2})

	created, _ := svc.Create(ctx, 1, ports.CaseInput{ClientID: a.ID, CaseTitle: "T"})

	updated, err := svc.Update(ctx, 1, created.ID, ports.CaseInput{ClientID: b.ID, CaseTitle: "T"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ClientID != b.ID {
		t.Fatalf("client not reassigned, got %d", updated.ClientID)
	}

	if _, err := svc.Update(ctx, 1, created.ID, ports.CaseInput{ClientID: foreign.ID, CaseTitle: "T"}); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound for foreign reassignment, got %v", err)
	}
}
