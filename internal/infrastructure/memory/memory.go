// Package memory provee implementaciones en memoria de los puertos de
// persistencia. Se usan en tests de use cases y handlers; replican las
// invariantes de unicidad que en PostgreSQL viven como índices únicos.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tu-usuario/recognition-api/internal/domain"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
	"github.com/tu-usuario/recognition-api/internal/domain/repository"
)

var (
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.CycleRepository      = (*CycleRepo)(nil)
	_ repository.NominationRepository = (*NominationRepo)(nil)
	_ repository.VoteRepository       = (*VoteRepo)(nil)
)

// UserRepo fake en memoria de UserRepository.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

// NewUserRepository construye el fake de usuarios.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[string]entity.User)}
}

func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) List() ([]*entity.User, error) {
	return r.listWhere(func(entity.User) bool { return true })
}

func (r *UserRepo) ListByRole(role string) ([]*entity.User, error) {
	return r.listWhere(func(u entity.User) bool { return u.Role == role })
}

func (r *UserRepo) listWhere(keep func(entity.User) bool) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.User
	for _, u := range r.users {
		if keep(u) {
			cp := u
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *UserRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

// CycleRepo fake en memoria de CycleRepository.
type CycleRepo struct {
	mu     sync.RWMutex
	cycles map[string]entity.Cycle
}

// NewCycleRepository construye el fake de ciclos.
func NewCycleRepository() *CycleRepo {
	return &CycleRepo{cycles: make(map[string]entity.Cycle)}
}

// CreateExclusive cierra los ciclos abiertos e inserta el nuevo bajo el mismo lock,
// replicando la transacción del adaptador PostgreSQL.
func (r *CycleRepo) CreateExclusive(_ context.Context, cycle *entity.Cycle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.cycles {
		if c.Status != entity.CycleStatusClosed {
			c.Status = entity.CycleStatusClosed
			c.UpdatedAt = time.Now()
			r.cycles[id] = c
		}
	}
	r.cycles[cycle.ID] = *cycle
	return nil
}

func (r *CycleRepo) GetByID(id string) (*entity.Cycle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.cycles[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *CycleRepo) List() ([]*entity.Cycle, error) {
	return r.listWhere(func(entity.Cycle) bool { return true })
}

func (r *CycleRepo) ListOpen() ([]*entity.Cycle, error) {
	return r.listWhere(func(c entity.Cycle) bool { return c.Status != entity.CycleStatusClosed })
}

func (r *CycleRepo) listWhere(keep func(entity.Cycle) bool) ([]*entity.Cycle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Cycle
	for _, c := range r.cycles {
		if keep(c) {
			cp := c
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PeriodKey() > list[j].PeriodKey() })
	return list, nil
}

func (r *CycleRepo) UpdateStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cycles[id]
	if !ok {
		return nil
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	r.cycles[id] = c
	return nil
}

func (r *CycleRepo) CloseWithWinner(id, winnerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cycles[id]
	if !ok {
		return nil
	}
	c.WinnerID = winnerID
	c.Status = entity.CycleStatusClosed
	c.UpdatedAt = time.Now()
	r.cycles[id] = c
	return nil
}

// NominationRepo fake en memoria de NominationRepository.
type NominationRepo struct {
	mu          sync.RWMutex
	nominations []entity.Nomination
}

// NewNominationRepository construye el fake de nominaciones.
func NewNominationRepository() *NominationRepo {
	return &NominationRepo{}
}

func (r *NominationRepo) Create(nomination *entity.Nomination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.nominations {
		if n.NominatorID == nomination.NominatorID && n.CycleID == nomination.CycleID {
			return domain.ErrDuplicateSubmission
		}
	}
	r.nominations = append(r.nominations, *nomination)
	return nil
}

func (r *NominationRepo) ListByCycle(cycleID string) ([]*entity.Nomination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Nomination
	for i := range r.nominations {
		if r.nominations[i].CycleID == cycleID {
			cp := r.nominations[i]
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *NominationRepo) GetByNominator(nominatorID, cycleID string) (*entity.Nomination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.nominations {
		if r.nominations[i].NominatorID == nominatorID && r.nominations[i].CycleID == cycleID {
			cp := r.nominations[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *NominationRepo) ListAll() ([]*entity.Nomination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Nomination, 0, len(r.nominations))
	for i := range r.nominations {
		cp := r.nominations[i]
		list = append(list, &cp)
	}
	return list, nil
}

// VoteRepo fake en memoria de VoteRepository.
type VoteRepo struct {
	mu    sync.RWMutex
	votes []entity.Vote
}

// NewVoteRepository construye el fake de votos.
func NewVoteRepository() *VoteRepo {
	return &VoteRepo{}
}

func (r *VoteRepo) Create(vote *entity.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.votes {
		if v.VoterID == vote.VoterID && v.CycleID == vote.CycleID {
			return domain.ErrDuplicateSubmission
		}
	}
	r.votes = append(r.votes, *vote)
	return nil
}

func (r *VoteRepo) ListByCycle(cycleID string) ([]*entity.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Vote
	for i := range r.votes {
		if r.votes[i].CycleID == cycleID {
			cp := r.votes[i]
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *VoteRepo) GetByVoter(voterID, cycleID string) (*entity.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.votes {
		if r.votes[i].VoterID == voterID && r.votes[i].CycleID == cycleID {
			cp := r.votes[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *VoteRepo) ListAll() ([]*entity.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Vote, 0, len(r.votes))
	for i := range r.votes {
		cp := r.votes[i]
		list = append(list, &cp)
	}
	return list, nil
}
