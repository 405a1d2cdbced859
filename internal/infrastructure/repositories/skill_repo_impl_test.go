package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"staff-roster.backend/internal/domain/entities"
	domainerrors "staff-roster.backend/internal/domain/errors"
	"staff-roster.backend/internal/infrastructure/models"
)

func TestSkillRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepository(db)

	s := &entities.Skill{Name: "Forklift", Description: "Certified operator"}
	require.NoError(t, repo.Create(testCtx, s))
	require.NotEqual(t, uuid.Nil, s.ID)
	require.False(t, s.CreatedAt.IsZero())

	got, err := repo.GetByID(testCtx, s.ID)
	require.NoError(t, err)
	require.Equal(t, "Forklift", got.Name)
	require.Equal(t, "Certified operator", got.Description)

	s.Description = ""
	require.NoError(t, repo.Update(testCtx, s))
	got, err = repo.GetByID(testCtx, s.ID)
	require.NoError(t, err)
	require.Equal(t, "", got.Description)

	require.NoError(t, repo.Delete(testCtx, s.ID))
	_, err = repo.GetByID(testCtx, s.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Delete(testCtx, s.ID), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Update(testCtx, s), domainerrors.ErrNotFound)
}

func TestSkillRepository_DuplicateNameIsConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepository(db)

	first := seedSkill(t, db, "Cashier")
	err := repo.Create(testCtx, &entities.Skill{Name: "Cashier"})
	require.ErrorIs(t, err, domainerrors.ErrConflict)

	taken, err := repo.ExistsByName(testCtx, "Cashier", uuid.Nil)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.ExistsByName(testCtx, "Cashier", first.ID)
	require.NoError(t, err)
	require.False(t, taken)
}

func TestSkillRepository_ListSearchOrderPage(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepository(db)
	seedSkill(t, db, "Cook")
	seedSkill(t, db, "Barista")
	seedSkill(t, db, "Cashier")
	seedSkill(t, db, "100%_sure")

	items, total, err := repo.List(testCtx, entities.SkillFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
	require.Equal(t, []string{"100%_sure", "Barista", "Cashier", "Cook"}, skillNames(items))

	items, _, err = repo.List(testCtx, entities.SkillFilter{Ordering: []string{"-name"}})
	require.NoError(t, err)
	require.Equal(t, "Cook", items[0].Name)

	items, total, err = repo.List(testCtx, entities.SkillFilter{Search: "CA"})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "Cashier", items[0].Name)

	// description is searched too
	items, _, err = repo.List(testCtx, entities.SkillFilter{Search: "cook work"})
	require.NoError(t, err)
	require.Equal(t, []string{"Cook"}, skillNames(items))

	// wildcards are literal
	items, _, err = repo.List(testCtx, entities.SkillFilter{Search: "%_"})
	require.NoError(t, err)
	require.Equal(t, []string{"100%_sure"}, skillNames(items))

	items, total, err = repo.List(testCtx, entities.SkillFilter{Page: 2, Limit: 3})
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
	require.Equal(t, []string{"Cook"}, skillNames(items))

	// unknown ordering fields fall back to the default
	items, _, err = repo.List(testCtx, entities.SkillFilter{Ordering: []string{"bogus"}})
	require.NoError(t, err)
	require.Equal(t, "100%_sure", items[0].Name)
}

func TestSkillRepository_DeleteDetachesEmployees(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepository(db)
	cook := seedSkill(t, db, "Cook")
	host := seedSkill(t, db, "Host")
	emp := seedEmployee(t, db, "Jane", "Doe", "jane@example.com", cook, host)

	require.NoError(t, repo.Delete(testCtx, cook.ID))
	require.Equal(t, int64(1), countRows(t, db, &models.EmployeeSkill{}))

	got, err := NewEmployeeRepository(db).GetByID(testCtx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Host"}, skillNames(got.Skills))
}

func TestSkillRepository_GetByIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepository(db)
	a := seedSkill(t, db, "Cook")
	b := seedSkill(t, db, "Barista")

	items, err := repo.GetByIDs(testCtx, []uuid.UUID{a.ID, b.ID, uuid.New()})
	require.NoError(t, err)
	require.Equal(t, []string{"Barista", "Cook"}, skillNames(items))

	items, err = repo.GetByIDs(testCtx, nil)
	require.NoError(t, err)
	require.Empty(t, items)
}

func skillNames(items []*entities.Skill) []string {
	names := make([]string, 0, len(items))
	for _, s := range items {
		names = append(names, s.Name)
	}
	return names
}
