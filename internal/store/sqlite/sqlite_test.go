package sqlite

import (
	"database/sql"
	"testing"

	"github.com/planline/planline/internal/domain"
	"github.com/planline/planline/internal/store"
)

// testDB opens a fresh project database in a temp directory.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	m, err := store.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	t.Cleanup(func() { m.Close() })

	db, err := m.GetDB("test")
	if err != nil {
		t.Fatalf("GetDB() error = %v", err)
	}
	return db
}

func mustCreateActivity(t *testing.T, repo *ActivityRepository, name string) {
	t.Helper()
	if err := repo.Create(domain.NewActivity(name)); err != nil {
		t.Fatalf("Create(%s) error = %v", name, err)
	}
}

func TestActivityRepository_CreateAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewActivityRepository(db)

	activity := domain.NewActivity("excavate")
	activity.SetLabel("Excavate the site")
	if err := repo.Create(activity); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByName("excavate")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if got.Name != "excavate" {
		t.Errorf("Name = %q, want excavate", got.Name)
	}
	if got.Label == nil || *got.Label != "Excavate the site" {
		t.Errorf("Label = %v, want set", got.Label)
	}
}

func TestActivityRepository_CreateIsIdempotent(t *testing.T) {
	db := testDB(t)
	repo := NewActivityRepository(db)

	mustCreateActivity(t, repo, "excavate")
	mustCreateActivity(t, repo, "excavate")

	activities, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(activities) != 1 {
		t.Errorf("List() returned %d activities, want 1", len(activities))
	}
}

func TestActivityRepository_GetMissing(t *testing.T) {
	db := testDB(t)
	repo := NewActivityRepository(db)

	if _, err := repo.GetByName("ghost"); err != sql.ErrNoRows {
		t.Errorf("GetByName() error = %v, want sql.ErrNoRows", err)
	}
}

func TestActivityRepository_DeleteCascadesEdges(t *testing.T) {
	db := testDB(t)
	activityRepo := NewActivityRepository(db)
	edgeRepo := NewEdgeRepository(db)

	mustCreateActivity(t, activityRepo, "A")
	mustCreateActivity(t, activityRepo, "B")
	mustCreateActivity(t, activityRepo, "C")
	if _, err := edgeRepo.Upsert("A", "B", 5); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if _, err := edgeRepo.Upsert("C", "B", 2); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if err := activityRepo.Delete("B"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	edges, err := edgeRepo.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("edges referencing B should cascade away, got %v", edges)
	}
}

func TestActivityRepository_DeleteMissing(t *testing.T) {
	db := testDB(t)
	repo := NewActivityRepository(db)

	if err := repo.Delete("ghost"); err != sql.ErrNoRows {
		t.Errorf("Delete() error = %v, want sql.ErrNoRows", err)
	}
}

func TestEdgeRepository_UpsertOverwrites(t *testing.T) {
	db := testDB(t)
	activityRepo := NewActivityRepository(db)
	edgeRepo := NewEdgeRepository(db)

	mustCreateActivity(t, activityRepo, "A")
	mustCreateActivity(t, activityRepo, "B")

	previous, err := edgeRepo.Upsert("A", "B", 5)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if previous != nil {
		t.Errorf("first insert should have no previous duration, got %v", *previous)
	}

	previous, err = edgeRepo.Upsert("A", "B", 9)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if previous == nil || *previous != 5 {
		t.Errorf("overwrite should report previous duration 5, got %v", previous)
	}

	edges, _ := edgeRepo.ListFrom("A")
	if len(edges) != 1 || edges[0].Duration != 9 {
		t.Errorf("ListFrom(A) = %v, want single edge with duration 9", edges)
	}
}

func TestEdgeRepository_ListPreservesInsertionOrder(t *testing.T) {
	db := testDB(t)
	activityRepo := NewActivityRepository(db)
	edgeRepo := NewEdgeRepository(db)

	for _, name := range []string{"A", "Z", "M", "B"} {
		mustCreateActivity(t, activityRepo, name)
	}
	for _, to := range []string{"Z", "M", "B"} {
		if _, err := edgeRepo.Upsert("A", to, 1); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	edges, err := edgeRepo.ListFrom("A")
	if err != nil {
		t.Fatalf("ListFrom() error = %v", err)
	}
	want := []string{"Z", "M", "B"}
	for i, e := range edges {
		if e.To != want[i] {
			t.Errorf("edge %d = %s, want %s (insertion order)", i, e.To, want[i])
		}
	}
}

func TestEdgeRepository_RemoveMissing(t *testing.T) {
	db := testDB(t)
	edgeRepo := NewEdgeRepository(db)

	if err := edgeRepo.Remove("A", "B"); err != sql.ErrNoRows {
		t.Errorf("Remove() error = %v, want sql.ErrNoRows", err)
	}
}

func TestEssentialRepository(t *testing.T) {
	db := testDB(t)
	activityRepo := NewActivityRepository(db)
	essentialRepo := NewEssentialRepository(db)

	mustCreateActivity(t, activityRepo, "E")
	mustCreateActivity(t, activityRepo, "B")

	if err := essentialRepo.Add("E", "B"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	// Idempotent re-add
	if err := essentialRepo.Add("E", "B"); err != nil {
		t.Fatalf("Add() twice error = %v", err)
	}

	constraints, err := essentialRepo.ListByActivity("E")
	if err != nil {
		t.Fatalf("ListByActivity() error = %v", err)
	}
	if len(constraints) != 1 || constraints[0].Required != "B" {
		t.Errorf("ListByActivity(E) = %v, want one constraint on B", constraints)
	}

	if err := essentialRepo.Remove("E", "B"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := essentialRepo.Remove("E", "B"); err != sql.ErrNoRows {
		t.Errorf("Remove() twice error = %v, want sql.ErrNoRows", err)
	}
}

func TestAuditRepository_LogAndList(t *testing.T) {
	db := testDB(t)
	auditRepo := NewAuditRepository(db)

	entry := domain.NewAuditEntry("A", domain.ActionAddEdge, "tester").
		WithField("duration").
		WithNewValue("5")
	if err := auditRepo.Log(&entry); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	entries, err := auditRepo.ListByActivity("A")
	if err != nil {
		t.Fatalf("ListByActivity() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ListByActivity() returned %d entries, want 1", len(entries))
	}
	got := entries[0]
	if got.Action != domain.ActionAddEdge || got.ChangedBy != "tester" {
		t.Errorf("entry = %+v", got)
	}
	if got.NewValue == nil || *got.NewValue != "5" {
		t.Errorf("NewValue = %v, want 5", got.NewValue)
	}
}

func TestAuditRepository_QueryFilters(t *testing.T) {
	db := testDB(t)
	auditRepo := NewAuditRepository(db)

	for _, action := range []domain.AuditAction{domain.ActionAddActivity, domain.ActionSolve, domain.ActionSolve} {
		entry := domain.NewAuditEntry("A", action, "tester")
		if err := auditRepo.Log(&entry); err != nil {
			t.Fatalf("Log() error = %v", err)
		}
	}

	action := string(domain.ActionSolve)
	entries, total, err := auditRepo.Query(AuditQueryParams{
		Action:  &action,
		Page:    1,
		PerPage: 10,
	})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if total != 2 || len(entries) != 2 {
		t.Errorf("Query() total = %d entries = %d, want 2 and 2", total, len(entries))
	}
}
