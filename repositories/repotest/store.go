// Package repotest traz implementações em memória dos repositórios para testes.
// Todas contam as chamadas recebidas, o que permite afirmar que uma requisição
// foi rejeitada sem tocar no banco.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"github.com/Gisely-Aguiar/backend-vousher/repositories"
)

// Store simula as duas tabelas e implementa os três repositórios
type Store struct {
	mu       sync.Mutex
	users    []domain.SystemUser
	vouchers []domain.VoucherUser
	nextUser uint
	nextVouc uint
	calls    int
	clock    time.Time

	// Err, se definido, é devolvido por todas as operações
	Err error
	// SkipUniqueIndex simula um banco sem índice único em username
	SkipUniqueIndex bool
}

// NewStore cria um banco vazio
func NewStore() *Store {
	return &Store{
		nextUser: 1,
		nextVouc: 1,
		clock:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Calls devolve quantas operações de banco foram feitas
func (s *Store) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *Store) begin() error {
	s.calls++
	return s.Err
}

// AddSystemUser insere um operador diretamente (sem contar chamada)
func (s *Store) AddSystemUser(u domain.SystemUser) domain.SystemUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextUser
	s.nextUser++
	s.users = append(s.users, u)
	return u
}

// SystemUsers é a visão de SystemUserRepository
func (s *Store) SystemUsers() repositories.SystemUserRepository { return systemUsers{s} }

// VoucherUsers é a visão de VoucherUserRepository
func (s *Store) VoucherUsers() repositories.VoucherUserRepository { return voucherUsers{s} }

// Dev é a visão de DevRepository
func (s *Store) Dev() repositories.DevRepository { return dev{s} }

type systemUsers struct{ s *Store }

func (r systemUsers) FindActiveByUsername(_ context.Context, username string) (*domain.SystemUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin(); err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if u.Username == username && u.IsActive {
			found := u
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r systemUsers) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin(); err != nil {
		return false, err
	}
	for _, u := range r.s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r systemUsers) Create(_ context.Context, user *domain.SystemUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin(); err != nil {
		return err
	}
	if !r.s.SkipUniqueIndex {
		for _, u := range r.s.users {
			if u.Username == user.Username {
				return repositories.ErrDuplicate
			}
		}
	}
	user.ID = r.s.nextUser
	r.s.nextUser++
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r systemUsers) List(_ context.Context) ([]domain.SystemUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin(); err != nil {
		return nil, err
	}
	return append([]domain.SystemUser(nil), r.s.users...), nil
}

func (r systemUsers) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin(); err != nil {
		return 0, err
	}
	return int64(len(r.s.users)), nil
}

type voucherUsers struct{ s *Store }

func (r voucherUsers) Create(_ context.Context, v *domain.VoucherUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin(); err != nil {
		return err
	}
	// Cada cadastro fica um segundo depois do anterior
	r.s.clock = r.s.clock.Add(time.Second)
	v.ID = r.s.nextVouc
	v.RegisteredAt = r.s.clock
	r.s.nextVouc++
	r.s.vouchers = append(r.s.vouchers, *v)
	return nil
}

func (r voucherUsers) view(v domain.VoucherUser) domain.VoucherUserView {
	view := domain.VoucherUserView{VoucherUser: v}
	for _, u := range r.s.users {
		if u.ID == v.RegisteredBy {
			name := u.Name
			view.RegisteredByName = &name
		}
	}
	return view
}

func (r voucherUsers) FindByVoucherID(_ context.Context, voucherID string) (*domain.VoucherUserView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin(); err != nil {
		return nil, err
	}
	for _, v := range r.s.vouchers {
		if v.VoucherID == voucherID {
			view := r.view(v)
			return &view, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r voucherUsers) List(_ context.Context, search string) ([]domain.VoucherUserView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin(); err != nil {
		return nil, err
	}

	views := make([]domain.VoucherUserView, 0)
	for _, v := range r.s.vouchers {
		if search == "" || matches(v, search) {
			views = append(views, r.view(v))
		}
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].RegisteredAt.Equal(views[j].RegisteredAt) {
			return views[i].ID > views[j].ID
		}
		return views[i].RegisteredAt.After(views[j].RegisteredAt)
	})
	return views, nil
}

func matches(v domain.VoucherUser, term string) bool {
	if strings.Contains(v.Name, term) || strings.Contains(v.VoucherID, term) || strings.Contains(v.Phone, term) {
		return true
	}
	return v.Email != nil && strings.Contains(*v.Email, term)
}

func (r voucherUsers) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin(); err != nil {
		return 0, err
	}
	return int64(len(r.s.vouchers)), nil
}

type dev struct{ s *Store }

func (r dev) Reset(_ context.Context, seeds []domain.SystemUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin(); err != nil {
		return err
	}
	r.s.vouchers = nil
	r.s.users = nil
	for i := range seeds {
		seeds[i].ID = r.s.nextUser
		r.s.nextUser++
		r.s.users = append(r.s.users, seeds[i])
	}
	return nil
}
