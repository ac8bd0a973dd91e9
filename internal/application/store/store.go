package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sanketgaikwad/portfolio-api/adapters/event"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/certification"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/contact"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/education"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/internship"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/portfolio"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/profile"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/project"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

// State tracks the store lifecycle. CRUD operations never regress a ready
// store back to loading.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateEmpty // backend reachable but never seeded
	StateReady
)

// Publisher announces committed mutations. Fire-and-forget: a publish
// failure is logged, never propagated to the caller.
type Publisher interface {
	PublishContentEvent(ctx context.Context, payload event.ContentEventPayload) error
}

// Invalidator drops any externally cached copy of the snapshot.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Repositories bundles the durable side of every collection.
type Repositories struct {
	Profile        profile.Repository
	Education      education.Repository
	Internships    internship.Repository
	Projects       project.Repository
	Certifications certification.Repository
	Contacts       contact.Repository
}

// Store owns the single in-process copy of the aggregate snapshot and is
// the only path through which it mutates. Consumers read cloned snapshots
// and subscribe for change broadcasts; they never touch the master copy.
type Store struct {
	repos     Repositories
	notifier  Notifier
	publisher Publisher
	cache     Invalidator
	logger    logger.Logger

	mu       sync.RWMutex
	snapshot *portfolio.Snapshot
	state    State
	subs     map[int]func(*portfolio.Snapshot)
	nextSub  int

	education       *Collection[education.Education]
	internships     *Collection[internship.Internship]
	projects        *Collection[project.Project]
	ongoingProjects *Collection[project.Project]
	certifications  *Collection[certification.Certification]
	contacts        *Collection[contact.Contact]
}

type Option func(*Store)

func WithPublisher(p Publisher) Option {
	return func(s *Store) { s.publisher = p }
}

func WithCache(c Invalidator) Option {
	return func(s *Store) { s.cache = c }
}

func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func New(repos Repositories, log logger.Logger, opts ...Option) *Store {
	s := &Store{
		repos:    repos,
		notifier: NewLogNotifier(log),
		logger:   log,
		state:    StateUninitialized,
		subs:     make(map[int]func(*portfolio.Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.education = &Collection[education.Education]{
		store: s,
		name:  portfolio.CollectionEducation,
		slice: func(sn *portfolio.Snapshot) *[]education.Education { return &sn.Education },
		id:    func(e *education.Education) uuid.UUID { return e.ID },
		setID: func(e *education.Education, id uuid.UUID) { e.ID = id },

		insert: repos.Education.Insert,
		update: repos.Education.Update,
		remove: repos.Education.Delete,
	}
	s.internships = &Collection[internship.Internship]{
		store: s,
		name:  portfolio.CollectionInternships,
		slice: func(sn *portfolio.Snapshot) *[]internship.Internship { return &sn.Internships },
		id:    func(i *internship.Internship) uuid.UUID { return i.ID },
		setID: func(i *internship.Internship, id uuid.UUID) { i.ID = id },
		check: func(i *internship.Internship) error { return i.Validate() },

		insert: repos.Internships.Insert,
		update: repos.Internships.Update,
		remove: repos.Internships.Delete,
	}
	s.projects = &Collection[project.Project]{
		store:   s,
		name:    portfolio.CollectionProjects,
		slice:   func(sn *portfolio.Snapshot) *[]project.Project { return &sn.Projects },
		id:      func(p *project.Project) uuid.UUID { return p.ID },
		setID:   func(p *project.Project, id uuid.UUID) { p.ID = id },
		prepare: func(p *project.Project) { p.Ongoing = false },

		insert: repos.Projects.Insert,
		update: repos.Projects.Update,
		remove: repos.Projects.Delete,
	}
	s.ongoingProjects = &Collection[project.Project]{
		store:   s,
		name:    portfolio.CollectionOngoingProjects,
		slice:   func(sn *portfolio.Snapshot) *[]project.Project { return &sn.OngoingProjects },
		id:      func(p *project.Project) uuid.UUID { return p.ID },
		setID:   func(p *project.Project, id uuid.UUID) { p.ID = id },
		prepare: func(p *project.Project) { p.Ongoing = true },

		insert: repos.Projects.Insert,
		update: repos.Projects.Update,
		remove: repos.Projects.Delete,
	}
	s.certifications = &Collection[certification.Certification]{
		store: s,
		name:  portfolio.CollectionCertifications,
		slice: func(sn *portfolio.Snapshot) *[]certification.Certification { return &sn.Certifications },
		id:    func(c *certification.Certification) uuid.UUID { return c.ID },
		setID: func(c *certification.Certification, id uuid.UUID) { c.ID = id },

		insert: repos.Certifications.Insert,
		update: repos.Certifications.Update,
		remove: repos.Certifications.Delete,
	}
	s.contacts = &Collection[contact.Contact]{
		store:   s,
		name:    portfolio.CollectionContacts,
		prepend: true,
		slice:   func(sn *portfolio.Snapshot) *[]contact.Contact { return &sn.Contacts },
		id:      func(c *contact.Contact) uuid.UUID { return c.ID },
		setID:   func(c *contact.Contact, id uuid.UUID) { c.ID = id },

		insert: repos.Contacts.Insert,
		update: repos.Contacts.Update,
		remove: repos.Contacts.Delete,
	}

	return s
}

func (s *Store) Education() *Collection[education.Education]            { return s.education }
func (s *Store) Internships() *Collection[internship.Internship]        { return s.internships }
func (s *Store) Projects() *Collection[project.Project]                 { return s.projects }
func (s *Store) OngoingProjects() *Collection[project.Project]          { return s.ongoingProjects }
func (s *Store) Certifications() *Collection[certification.Certification] {
	return s.certifications
}
func (s *Store) Contacts() *Collection[contact.Contact] { return s.contacts }

// Snapshot returns a deep copy of the current aggregate, or nil while the
// backend is unseeded.
func (s *Store) Snapshot() *portfolio.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a listener that receives a cloned snapshot after every
// broadcast. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(*portfolio.Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Load fetches the profile singleton first; its absence marks the whole
// backend as unseeded. Otherwise every collection is fetched in parallel and
// assembled into one snapshot.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateUninitialized {
		s.state = StateLoading
	}
	prevState := s.state
	s.mu.Unlock()

	p, err := s.repos.Profile.Get(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			s.mu.Lock()
			s.snapshot = nil
			s.state = StateEmpty
			s.mu.Unlock()
			s.broadcast(nil)
			return nil
		}
		s.restoreState(prevState)
		return err
	}

	snap := &portfolio.Snapshot{Profile: p}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { snap.Education, err = s.repos.Education.List(gctx); return })
	g.Go(func() (err error) { snap.Internships, err = s.repos.Internships.List(gctx); return })
	g.Go(func() (err error) { snap.Projects, err = s.repos.Projects.List(gctx, false); return })
	g.Go(func() (err error) { snap.OngoingProjects, err = s.repos.Projects.List(gctx, true); return })
	g.Go(func() (err error) { snap.Certifications, err = s.repos.Certifications.List(gctx); return })
	g.Go(func() (err error) { snap.Contacts, err = s.repos.Contacts.List(gctx); return })
	if err := g.Wait(); err != nil {
		s.restoreState(prevState)
		return err
	}

	s.mu.Lock()
	s.snapshot = snap
	s.state = StateReady
	clone := snap.Clone()
	s.mu.Unlock()
	s.broadcast(clone)
	return nil
}

// Seed bulk-writes the default dataset and reloads. Only valid while the
// backend is unseeded; this is the one transition out of StateEmpty.
func (s *Store) Seed(ctx context.Context) error {
	s.mu.RLock()
	seeded := s.snapshot != nil
	s.mu.RUnlock()
	if seeded {
		return apperror.NewConflict("portfolio", "state", "seeded")
	}

	def := portfolio.DefaultSnapshot()
	if err := s.repos.Profile.Upsert(ctx, def.Profile); err != nil {
		s.notifier.Notify("seed", err)
		return err
	}
	for _, e := range def.Education {
		if err := s.repos.Education.Insert(ctx, e); err != nil {
			s.notifier.Notify("seed", err)
			return err
		}
	}
	for _, i := range def.Internships {
		if err := s.repos.Internships.Insert(ctx, i); err != nil {
			s.notifier.Notify("seed", err)
			return err
		}
	}
	for _, p := range append(def.Projects, def.OngoingProjects...) {
		if err := s.repos.Projects.Insert(ctx, p); err != nil {
			s.notifier.Notify("seed", err)
			return err
		}
	}
	for _, c := range def.Certifications {
		if err := s.repos.Certifications.Insert(ctx, c); err != nil {
			s.notifier.Notify("seed", err)
			return err
		}
	}

	if err := s.Load(ctx); err != nil {
		return err
	}

	s.afterCommit(mutation{
		op:         "seed",
		collection: portfolio.CollectionProfile,
		eventType:  event.ContentEventTypeSeeded,
	})
	return nil
}

// UpdateProfile replaces the singleton and persists it with merge-upsert
// semantics, through the same optimistic transaction as collection CRUD.
func (s *Store) UpdateProfile(ctx context.Context, p profile.Profile) error {
	p.UpdatedAt = time.Now().UTC()

	m := mutation{
		op:         "update profile",
		collection: portfolio.CollectionProfile,
		eventType:  event.ContentEventTypeUpdated,
	}
	return s.mutate(ctx, m,
		func(snap *portfolio.Snapshot) (func(*portfolio.Snapshot), bool) {
			prev := snap.Profile
			cp := p
			snap.Profile = &cp
			return func(snap *portfolio.Snapshot) { snap.Profile = prev }, true
		},
		func(ctx context.Context) error { return s.repos.Profile.Upsert(ctx, &p) },
	)
}

type mutation struct {
	op         string
	collection portfolio.Collection
	eventType  event.ContentEventType
	resourceID uuid.UUID
}

// mutate is the optimistic transaction wrapper: apply the local change and
// broadcast it, then persist; on rejection run the inverse, broadcast again
// and notify the operator exactly once. apply returns ok=false for defined
// no-ops (unknown id), which skip persistence entirely.
func (s *Store) mutate(
	ctx context.Context,
	m mutation,
	apply func(*portfolio.Snapshot) (func(*portfolio.Snapshot), bool),
	persist func(context.Context) error,
) error {
	s.mu.Lock()
	if s.snapshot == nil {
		s.mu.Unlock()
		return apperror.NewAppError(apperror.ErrNotFound, "portfolio is not seeded", m.op, nil)
	}
	revert, ok := apply(s.snapshot)
	if !ok {
		s.mu.Unlock()
		return nil
	}
	clone := s.snapshot.Clone()
	s.mu.Unlock()
	s.broadcast(clone)

	if err := persist(ctx); err != nil {
		s.mu.Lock()
		revert(s.snapshot)
		clone = s.snapshot.Clone()
		s.mu.Unlock()
		s.broadcast(clone)
		s.notifier.Notify(m.op, err)
		return err
	}

	s.afterCommit(m)
	return nil
}

func (s *Store) afterCommit(m mutation) {
	if s.cache != nil {
		s.cache.Invalidate(context.Background())
	}
	if s.publisher != nil {
		payload := event.ContentEventPayload{
			EventType:  m.eventType,
			Collection: m.collection,
			ResourceID: m.resourceID,
		}
		go func() {
			if err := s.publisher.PublishContentEvent(context.Background(), payload); err != nil {
				s.logger.Error("Failed to publish content event", err,
					zap.String("collection", string(m.collection)))
			}
		}()
	}
}

func (s *Store) broadcast(snap *portfolio.Snapshot) {
	s.mu.RLock()
	fns := make([]func(*portfolio.Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snap.Clone())
	}
}

func (s *Store) restoreState(prev State) {
	s.mu.Lock()
	if s.state == StateLoading {
		if prev == StateLoading {
			prev = StateUninitialized
		}
		s.state = prev
	}
	s.mu.Unlock()
}
