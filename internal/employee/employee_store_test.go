package employee_test

import (
	"fmt"
	"sync"
	"testing"

	"employee-directory/internal/employee"
	employeeerrors "employee-directory/internal/employee/errors"
	employeeMock "employee-directory/internal/employee/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func sampleFields(name string) employee.Fields {
	return employee.Fields{
		Name:        name,
		DateOfBirth: "1990-01-01",
		Gender:      employee.GenderMale,
		Email:       "x@example.com",
		Address:     "1 Main St",
	}
}

func newSequenceStore() *employee.Store {
	return employee.NewStore(employee.NewSequenceGenerator("e", 7, 1))
}

func ids(emps []employee.Employee) []string {
	out := make([]string, len(emps))
	for i, e := range emps {
		out[i] = e.ID
	}
	return out
}

func assertUniqueIDs(t *testing.T, emps []employee.Employee) {
	t.Helper()
	seen := make(map[string]bool, len(emps))
	for _, e := range emps {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestStore_Create(t *testing.T) {
	t.Run("returns record with fresh id and supplied fields", func(t *testing.T) {
		store := newSequenceStore()

		got, err := store.Create(sampleFields("X"))

		assert.NoError(t, err)
		assert.Equal(t, "e0000001", got.ID)
		assert.Equal(t, "X", got.Name)
		assert.Equal(t, "1990-01-01", got.DateOfBirth)
		assert.Equal(t, employee.GenderMale, got.Gender)
		assert.Equal(t, "x@example.com", got.Email)
		assert.Equal(t, "1 Main St", got.Address)
	})

	t.Run("newest record comes first", func(t *testing.T) {
		store := newSequenceStore()
		first, _ := store.Create(sampleFields("first"))
		second, _ := store.Create(sampleFields("second"))

		assert.Equal(t, []string{second.ID, first.ID}, ids(store.List()))
	})

	t.Run("retries ids that were already issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := employeeMock.NewMockIDGenerator(ctrl)
		store := employee.NewStore(gen)

		gomock.InOrder(
			gen.EXPECT().NewID().Return("abc"),
			gen.EXPECT().NewID().Return("abc"),
			gen.EXPECT().NewID().Return(""),
			gen.EXPECT().NewID().Return("def"),
		)

		a, err := store.Create(sampleFields("a"))
		assert.NoError(t, err)
		b, err := store.Create(sampleFields("b"))
		assert.NoError(t, err)

		assert.Equal(t, "abc", a.ID)
		assert.Equal(t, "def", b.ID)
	})

	t.Run("does not reuse ids of deleted records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := employeeMock.NewMockIDGenerator(ctrl)
		store := employee.NewStore(gen)

		gomock.InOrder(
			gen.EXPECT().NewID().Return("abc"),
			gen.EXPECT().NewID().Return("abc"),
			gen.EXPECT().NewID().Return("xyz"),
		)

		a, _ := store.Create(sampleFields("a"))
		assert.NoError(t, store.Delete(a.ID))

		b, err := store.Create(sampleFields("b"))
		assert.NoError(t, err)
		assert.Equal(t, "xyz", b.ID)
	})

	t.Run("fails when generator keeps colliding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := employeeMock.NewMockIDGenerator(ctrl)
		store := employee.NewStore(gen)

		gen.EXPECT().NewID().Return("same").AnyTimes()

		_, err := store.Create(sampleFields("a"))
		assert.NoError(t, err)

		_, err = store.Create(sampleFields("b"))
		assert.ErrorIs(t, err, employeeerrors.ErrIDGenerationFailed)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("nil generator falls back to short uuids", func(t *testing.T) {
		store := employee.NewStore(nil)

		got, err := store.Create(sampleFields("a"))

		assert.NoError(t, err)
		assert.Len(t, got.ID, 8)
	})
}

func TestStore_Update(t *testing.T) {
	t.Run("changes only supplied fields", func(t *testing.T) {
		store := newSequenceStore()
		created, _ := store.Create(sampleFields("X"))

		name := "Y"
		gender := employee.GenderOther
		got, err := store.Update(created.ID, employee.Patch{Name: &name, Gender: &gender})

		assert.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Y", got.Name)
		assert.Equal(t, employee.GenderOther, got.Gender)
		assert.Equal(t, created.DateOfBirth, got.DateOfBirth)
		assert.Equal(t, created.Email, got.Email)
		assert.Equal(t, created.Address, got.Address)

		stored, _ := store.Get(created.ID)
		assert.Equal(t, got, stored)
	})

	t.Run("full overwrite keeps id and position", func(t *testing.T) {
		store := newSequenceStore()
		first, _ := store.Create(sampleFields("first"))
		second, _ := store.Create(sampleFields("second"))

		replacement := employee.Fields{
			Name:        "Replaced",
			DateOfBirth: "2000-12-31",
			Gender:      employee.GenderFemale,
			Email:       "r@example.com",
			Address:     "2 Side St",
		}
		got, err := store.Update(first.ID, employee.PatchFromFields(replacement))

		assert.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
		assert.Equal(t, "Replaced", got.Name)
		assert.Equal(t, "2000-12-31", got.DateOfBirth)
		assert.Equal(t, employee.GenderFemale, got.Gender)
		assert.Equal(t, []string{second.ID, first.ID}, ids(store.List()))
	})

	t.Run("missing id reports not found and changes nothing", func(t *testing.T) {
		store := newSequenceStore()
		store.Create(sampleFields("X"))
		before := store.List()

		name := "Y"
		_, err := store.Update("nope", employee.Patch{Name: &name})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.Equal(t, before, store.List())
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("removes exactly one record keeping order", func(t *testing.T) {
		store := newSequenceStore()
		a, _ := store.Create(sampleFields("a"))
		b, _ := store.Create(sampleFields("b"))
		c, _ := store.Create(sampleFields("c"))

		err := store.Delete(b.ID)

		assert.NoError(t, err)
		assert.Equal(t, []string{c.ID, a.ID}, ids(store.List()))
		_, err = store.Get(b.ID)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("create then delete twice", func(t *testing.T) {
		store := newSequenceStore()
		created, err := store.Create(employee.Fields{
			Name:        "X",
			DateOfBirth: "1990-01-01",
			Gender:      employee.GenderMale,
			Email:       "x@example.com",
			Address:     "1 Main St",
		})
		assert.NoError(t, err)

		assert.NoError(t, store.Delete(created.ID))
		assert.Empty(t, store.List())
		assert.ErrorIs(t, store.Delete(created.ID), employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("missing id leaves collection unchanged", func(t *testing.T) {
		store := newSequenceStore()
		store.Create(sampleFields("a"))
		store.Create(sampleFields("b"))
		before := store.List()

		err := store.Delete("missing")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.Equal(t, before, store.List())
	})
}

func TestStore_List_ReturnsCopy(t *testing.T) {
	store := newSequenceStore()
	created, _ := store.Create(sampleFields("a"))

	list := store.List()
	list[0].Name = "mutated"

	stored, err := store.Get(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "a", stored.Name)
}

func TestStore_Seed(t *testing.T) {
	t.Run("keeps seeded order and ids", func(t *testing.T) {
		store := employee.NewStore(employee.NewSequenceGenerator("e", 7, 9))
		demo := employee.DemoEmployees()

		assert.NoError(t, store.Seed(demo))
		assert.Equal(t, demo, store.List())

		created, err := store.Create(sampleFields("new"))
		assert.NoError(t, err)
		assert.Equal(t, "e0000009", created.ID)
		assertUniqueIDs(t, store.List())
	})

	t.Run("rejects duplicate ids atomically", func(t *testing.T) {
		store := newSequenceStore()
		records := []employee.Employee{
			{ID: "e1", Name: "a"},
			{ID: "e1", Name: "b"},
		}

		err := store.Seed(records)

		assert.ErrorIs(t, err, employeeerrors.ErrDuplicateEmployeeID)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("rejects empty ids as invalid", func(t *testing.T) {
		store := newSequenceStore()
		records := []employee.Employee{
			{ID: "e1", Name: "a"},
			{ID: "", Name: "b"},
		}

		err := store.Seed(records)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
		assert.NotErrorIs(t, err, employeeerrors.ErrDuplicateEmployeeID)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("seeded ids are never generated again", func(t *testing.T) {
		store := newSequenceStore()
		assert.NoError(t, store.Seed([]employee.Employee{{ID: "e0000001", Name: "seeded"}}))

		created, err := store.Create(sampleFields("new"))

		assert.NoError(t, err)
		assert.Equal(t, "e0000002", created.ID)
	})
}

func TestStore_UniqueIDsAcrossOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := employeeMock.NewMockIDGenerator(ctrl)
	// Every id is offered twice, so each create after the first collides once.
	n := 0
	gen.EXPECT().NewID().DoAndReturn(func() string {
		n++
		return fmt.Sprintf("id-%d", n/2)
	}).AnyTimes()
	store := employee.NewStore(gen)

	var live []string
	for i := 0; i < 6; i++ {
		e, err := store.Create(sampleFields(fmt.Sprintf("emp-%d", i)))
		assert.NoError(t, err)
		live = append(live, e.ID)
		if i%2 == 1 {
			assert.NoError(t, store.Delete(live[0]))
			live = live[1:]
		}
		assertUniqueIDs(t, store.List())
	}
	assert.Equal(t, 3, store.Len())
}

func TestStore_ConcurrentCreates(t *testing.T) {
	store := employee.NewStore(employee.NewUUIDGenerator())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Create(sampleFields(fmt.Sprintf("emp-%d", i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
	assertUniqueIDs(t, store.List())
}
