package users

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

// MemoryRepository keeps users in a map guarded by a RWMutex. Data lives
// for the lifetime of the process only.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  map[uint64]models.User
	lastID atomic.Uint64
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[uint64]models.User),
		now:   time.Now,
	}
}

// Save implements Repository. Ids are allocated while the write lock is
// held, so allocation order and insertion order coincide. A caller-supplied
// id moves the counter past it so it is never handed out again.
func (r *MemoryRepository) Save(u models.User) models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	switch cur, ok := r.users[u.ID]; {
	case u.ID == 0:
		u.ID = r.lastID.Add(1)
		u.CreatedAt = now
	case ok:
		u.CreatedAt = cur.CreatedAt
	default:
		u.CreatedAt = now
		if u.ID > r.lastID.Load() {
			r.lastID.Store(u.ID)
		}
	}
	u.UpdatedAt = now

	r.users[u.ID] = u.Clone()
	return u.Clone()
}

// Replace implements Repository.
func (r *MemoryRepository) Replace(u models.User) (models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.users[u.ID]
	if !ok {
		return models.User{}, false
	}

	u.CreatedAt = cur.CreatedAt
	u.UpdatedAt = r.now()
	if u.UpdatedAt.Before(cur.UpdatedAt) {
		u.UpdatedAt = cur.UpdatedAt
	}

	r.users[u.ID] = u.Clone()
	return u.Clone(), true
}

func (r *MemoryRepository) FindByID(id uint64) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return models.User{}, false
	}
	return u.Clone(), true
}

func (r *MemoryRepository) FindAll() []models.User {
	return r.snapshot(func(models.User) bool { return true })
}

func (r *MemoryRepository) FindByStatus(status models.Status) []models.User {
	return r.snapshot(func(u models.User) bool { return u.Status == status })
}

func (r *MemoryRepository) FindPaginated(page, size int) []models.User {
	if page < 0 || size <= 0 {
		return []models.User{}
	}
	all := r.FindAll()

	offset := int64(page) * int64(size)
	if offset >= int64(len(all)) {
		return []models.User{}
	}
	end := offset + int64(size)
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[offset:end]
}

func (r *MemoryRepository) DeleteByID(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	return true
}

func (r *MemoryRepository) ExistsByID(id uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[id]
	return ok
}

func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

// snapshot copies the matching records under the read lock and orders them
// by id.
func (r *MemoryRepository) snapshot(keep func(models.User) bool) []models.User {
	r.mu.RLock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		if keep(u) {
			out = append(out, u.Clone())
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.User) int { return cmp.Compare(a.ID, b.ID) })
	return out
}
