package employee

import (
	"slices"
	"sync"

	employeeerrors "employee-directory/internal/employee/errors"
)

// maxIDAttempts bounds retries when the generator returns an id that was
// already issued.
const maxIDAttempts = 8

// Directory is the operation set the Service depends on.
type Directory interface {
	Create(f Fields) (Employee, error)
	Update(id string, p Patch) (Employee, error)
	Delete(id string) error
	Get(id string) (Employee, error)
	List() []Employee
}

// Store owns the employee collection. Records are kept newest first and every
// id it has ever issued or seeded is remembered, so ids are never reused even
// after a delete.
type Store struct {
	mu      sync.RWMutex
	records []Employee
	issued  map[string]struct{}
	ids     IDGenerator
}

var _ Directory = (*Store)(nil)

func NewStore(ids IDGenerator) *Store {
	if ids == nil {
		ids = NewUUIDGenerator()
	}
	return &Store{
		issued: make(map[string]struct{}),
		ids:    ids,
	}
}

// Seed appends records in the given order, keeping their ids. It fails
// without changing anything if an id is empty, repeated or already issued.
func (s *Store) Seed(records []Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if r.ID == "" {
			return employeeerrors.ErrInvalidEmployeeID
		}
		if _, ok := s.issued[r.ID]; ok {
			return employeeerrors.ErrDuplicateEmployeeID
		}
		if _, ok := seen[r.ID]; ok {
			return employeeerrors.ErrDuplicateEmployeeID
		}
		seen[r.ID] = struct{}{}
	}

	for _, r := range records {
		s.issued[r.ID] = struct{}{}
		s.records = append(s.records, r)
	}
	return nil
}

// Create assigns a fresh id and places the record first.
func (s *Store) Create(f Fields) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID()
	if err != nil {
		return Employee{}, err
	}

	e := f.withID(id)
	s.issued[id] = struct{}{}
	s.records = slices.Insert(s.records, 0, e)
	return e, nil
}

func (s *Store) nextID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.NewID()
		if id == "" {
			continue
		}
		if _, taken := s.issued[id]; !taken {
			return id, nil
		}
	}
	return "", employeeerrors.ErrIDGenerationFailed
}

// Update overwrites the fields set in p. The id is never touched.
func (s *Store) Update(id string, p Patch) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}

	updated := p.apply(s.records[i])
	updated.ID = id
	s.records[i] = updated
	return updated, nil
}

// Delete removes the record, keeping the others in their relative order.
// A missing id reports ErrEmployeeNotFound and changes nothing.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.records = slices.Delete(s.records, i, i+1)
	return nil
}

func (s *Store) Get(id string) (Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}
	return s.records[i], nil
}

// List returns a copy of the collection, newest first.
func (s *Store) List() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.records)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.records, func(e Employee) bool {
		return e.ID == id
	})
}
