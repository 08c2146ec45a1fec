package services

import (
	"context"
	"sync"
	"time"

	"barrio/internal/models/db_models"
	"barrio/internal/repositories"
	"barrio/pkg/utils"
)

// In-memory repository fakes. They mimic only the behavior the services rely
// on: id assignment on insert, nil-on-missing lookups, and child-set
// application on update.

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (r *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == "" {
		account.ID = utils.NewID("account")
	}
	account.CreationDate = time.Now()
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	if account, ok := r.accounts[id]; ok {
		cp := *account
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			cp := *account
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	for _, account := range r.accounts {
		if account.Username == username {
			cp := *account
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindAll(ctx context.Context) ([]db_models.Account, error) {
	out := make([]db_models.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, *account)
	}
	return out, nil
}

func (r *fakeAccountRepo) Save(ctx context.Context, account *db_models.Account) error {
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) Delete(ctx context.Context, account *db_models.Account) error {
	delete(r.accounts, account.ID)
	return nil
}

type fakeResetTokenRepo struct {
	tokens map[string]*db_models.ResetToken
}

func newFakeResetTokenRepo() *fakeResetTokenRepo {
	return &fakeResetTokenRepo{tokens: make(map[string]*db_models.ResetToken)}
}

func (r *fakeResetTokenRepo) Insert(ctx context.Context, token *db_models.ResetToken) error {
	token.CreationDate = time.Now()
	cp := *token
	r.tokens[token.ID] = &cp
	return nil
}

func (r *fakeResetTokenRepo) FindByID(ctx context.Context, token string) (*db_models.ResetToken, error) {
	if t, ok := r.tokens[token]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeResetTokenRepo) MarkUsedForAccount(ctx context.Context, accountID string) error {
	for _, t := range r.tokens {
		if t.AccountID == accountID && !t.Used {
			t.Used = true
		}
	}
	return nil
}

func (r *fakeResetTokenRepo) Save(ctx context.Context, token *db_models.ResetToken) error {
	cp := *token
	r.tokens[token.ID] = &cp
	return nil
}

type fakeMailService struct {
	mu   sync.Mutex
	sent []sentMail
	wg   sync.WaitGroup
}

type sentMail struct {
	To    string
	Token string
}

func (m *fakeMailService) SendResetPasswordEmail(to string, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Token: token})
	m.wg.Done()
	return nil
}

// expect arms the fake for n asynchronous sends; wait blocks until they land.
func (m *fakeMailService) expect(n int) { m.wg.Add(n) }
func (m *fakeMailService) wait()        { m.wg.Wait() }

type fakeEventRepo struct {
	events       map[string]*db_models.Event
	updateCalls  int
	lastChildren repositories.EventChildrenUpdate
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*db_models.Event)}
}

func (r *fakeEventRepo) Insert(ctx context.Context, event *db_models.Event, tagIDs []string) error {
	if event.ID == "" {
		event.ID = utils.NewID("event")
	}
	for i := range event.Activities {
		event.Activities[i].ID = utils.NewID("activity")
		event.Activities[i].EventID = event.ID
	}
	for i := range event.Tickets {
		event.Tickets[i].ID = utils.NewID("ticket")
		event.Tickets[i].EventID = event.ID
	}
	for i := range event.Files {
		event.Files[i].ID = utils.NewID("file")
		event.Files[i].EventID = &event.ID
	}
	event.Tags = tagsFromIDs(tagIDs)
	cp := *event
	r.events[event.ID] = &cp
	return nil
}

func (r *fakeEventRepo) FindByID(ctx context.Context, id string) (*db_models.Event, error) {
	if event, ok := r.events[id]; ok {
		cp := *event
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeEventRepo) Find(ctx context.Context, filter repositories.EventFilter) ([]db_models.Event, error) {
	out := make([]db_models.Event, 0, len(r.events))
	for _, event := range r.events {
		if filter.AccountID != "" && event.AccountID != filter.AccountID {
			continue
		}
		if filter.City != "" && event.City != filter.City {
			continue
		}
		if filter.IsPublic != nil && event.IsPublic != *filter.IsPublic {
			continue
		}
		out = append(out, *event)
	}
	return out, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event *db_models.Event, children repositories.EventChildrenUpdate) error {
	r.updateCalls++
	r.lastChildren = children

	stored, ok := r.events[event.ID]
	if !ok {
		return utils.ErrEventNotFound
	}

	updated := *event
	updated.Activities = stored.Activities
	updated.Tickets = stored.Tickets
	updated.Files = stored.Files
	updated.Tags = stored.Tags

	if children.Activities != nil {
		updated.Activities = applyFakeSet(updated.Activities, *children.Activities,
			func(a db_models.Activity) string { return a.ID },
			func(a *db_models.Activity) { a.ID = utils.NewID("activity"); a.EventID = event.ID })
	}
	if children.Tickets != nil {
		updated.Tickets = applyFakeSet(updated.Tickets, *children.Tickets,
			func(t db_models.Ticket) string { return t.ID },
			func(t *db_models.Ticket) { t.ID = utils.NewID("ticket"); t.EventID = event.ID })
	}
	if children.Files != nil {
		updated.Files = applyFakeSet(updated.Files, *children.Files,
			func(f db_models.File) string { return f.ID },
			func(f *db_models.File) { f.ID = utils.NewID("file") })
	}
	if children.ReplaceTags {
		updated.Tags = tagsFromIDs(children.TagIDs)
	}

	r.events[event.ID] = &updated
	*event = updated
	return nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, event *db_models.Event) error {
	delete(r.events, event.ID)
	return nil
}

func (r *fakeEventRepo) FindDueRecurring(ctx context.Context, now time.Time) ([]db_models.Event, error) {
	var out []db_models.Event
	for _, event := range r.events {
		if event.Frequency != db_models.FrequencyNone && event.EndDate.Before(now) {
			out = append(out, *event)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Save(ctx context.Context, event *db_models.Event) error {
	stored, ok := r.events[event.ID]
	if !ok {
		return utils.ErrEventNotFound
	}
	updated := *event
	updated.Activities = stored.Activities
	updated.Tickets = stored.Tickets
	updated.Files = stored.Files
	updated.Tags = stored.Tags
	r.events[event.ID] = &updated
	return nil
}

func applyFakeSet[T any](existing []T, set repositories.ChildSet[T], idOf func(T) string, assign func(*T)) []T {
	deleted := make(map[string]struct{}, len(set.Delete))
	for _, id := range set.Delete {
		deleted[id] = struct{}{}
	}

	out := make([]T, 0, len(existing)+len(set.Create))
	for _, item := range existing {
		if _, gone := deleted[idOf(item)]; gone {
			continue
		}
		out = append(out, item)
	}
	for _, item := range set.Create {
		assign(&item)
		out = append(out, item)
	}
	return out
}

func tagsFromIDs(ids []string) []db_models.Tag {
	tags := make([]db_models.Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, db_models.Tag{ID: id})
	}
	return tags
}

type fakeBusinessRepo struct {
	businesses   map[string]*db_models.Business
	updateCalls  int
	lastChildren repositories.BusinessChildrenUpdate
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: make(map[string]*db_models.Business)}
}

func (r *fakeBusinessRepo) Insert(ctx context.Context, business *db_models.Business, tagIDs []string) error {
	if business.ID == "" {
		business.ID = utils.NewID("business")
	}
	for i := range business.SocialNetworks {
		business.SocialNetworks[i].ID = utils.NewID("social_network")
		business.SocialNetworks[i].BusinessID = business.ID
	}
	for i := range business.Files {
		business.Files[i].ID = utils.NewID("file")
	}
	business.Tags = tagsFromIDs(tagIDs)
	cp := *business
	r.businesses[business.ID] = &cp
	return nil
}

func (r *fakeBusinessRepo) FindByID(ctx context.Context, id string) (*db_models.Business, error) {
	if business, ok := r.businesses[id]; ok {
		cp := *business
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeBusinessRepo) Find(ctx context.Context, filter repositories.BusinessFilter) ([]db_models.Business, error) {
	out := make([]db_models.Business, 0, len(r.businesses))
	for _, business := range r.businesses {
		if filter.AccountID != "" && business.AccountID != filter.AccountID {
			continue
		}
		if filter.City != "" && business.City != filter.City {
			continue
		}
		if filter.IsPublic != nil && business.IsPublic != *filter.IsPublic {
			continue
		}
		out = append(out, *business)
	}
	return out, nil
}

func (r *fakeBusinessRepo) Update(ctx context.Context, business *db_models.Business, children repositories.BusinessChildrenUpdate) error {
	r.updateCalls++
	r.lastChildren = children

	stored, ok := r.businesses[business.ID]
	if !ok {
		return utils.ErrBusinessNotFound
	}

	updated := *business
	updated.SocialNetworks = stored.SocialNetworks
	updated.Files = stored.Files
	updated.Tags = stored.Tags

	if children.SocialNetworks != nil {
		updated.SocialNetworks = applyFakeSet(updated.SocialNetworks, *children.SocialNetworks,
			func(s db_models.SocialNetwork) string { return s.ID },
			func(s *db_models.SocialNetwork) { s.ID = utils.NewID("social_network"); s.BusinessID = business.ID })
	}
	if children.Files != nil {
		updated.Files = applyFakeSet(updated.Files, *children.Files,
			func(f db_models.File) string { return f.ID },
			func(f *db_models.File) { f.ID = utils.NewID("file") })
	}
	if children.ReplaceTags {
		updated.Tags = tagsFromIDs(children.TagIDs)
	}

	r.businesses[business.ID] = &updated
	*business = updated
	return nil
}

func (r *fakeBusinessRepo) Delete(ctx context.Context, business *db_models.Business) error {
	delete(r.businesses, business.ID)
	return nil
}

type fakeActivityRepo struct {
	activities map[string]*db_models.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[string]*db_models.Activity)}
}

func (r *fakeActivityRepo) Insert(ctx context.Context, activity *db_models.Activity) error {
	if activity.ID == "" {
		activity.ID = utils.NewID("activity")
	}
	cp := *activity
	r.activities[activity.ID] = &cp
	return nil
}

func (r *fakeActivityRepo) FindByID(ctx context.Context, id string) (*db_models.Activity, error) {
	if activity, ok := r.activities[id]; ok {
		cp := *activity
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeActivityRepo) Find(ctx context.Context, filter repositories.ActivityFilter) ([]db_models.Activity, error) {
	var out []db_models.Activity
	for _, activity := range r.activities {
		if filter.EventID != "" && activity.EventID != filter.EventID {
			continue
		}
		if filter.Name != "" && activity.Name != filter.Name {
			continue
		}
		out = append(out, *activity)
	}
	return out, nil
}

func (r *fakeActivityRepo) Save(ctx context.Context, activity *db_models.Activity) error {
	cp := *activity
	r.activities[activity.ID] = &cp
	return nil
}

func (r *fakeActivityRepo) Delete(ctx context.Context, activity *db_models.Activity) error {
	delete(r.activities, activity.ID)
	return nil
}

type fakeTicketRepo struct {
	tickets map[string]*db_models.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*db_models.Ticket)}
}

func (r *fakeTicketRepo) Insert(ctx context.Context, ticket *db_models.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = utils.NewID("ticket")
	}
	cp := *ticket
	r.tickets[ticket.ID] = &cp
	return nil
}

func (r *fakeTicketRepo) FindByID(ctx context.Context, id string) (*db_models.Ticket, error) {
	if ticket, ok := r.tickets[id]; ok {
		cp := *ticket
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeTicketRepo) Find(ctx context.Context, filter repositories.TicketFilter) ([]db_models.Ticket, error) {
	var out []db_models.Ticket
	for _, ticket := range r.tickets {
		if filter.EventID != "" && ticket.EventID != filter.EventID {
			continue
		}
		if filter.Name != "" && ticket.Name != filter.Name {
			continue
		}
		out = append(out, *ticket)
	}
	return out, nil
}

func (r *fakeTicketRepo) Save(ctx context.Context, ticket *db_models.Ticket) error {
	cp := *ticket
	r.tickets[ticket.ID] = &cp
	return nil
}

func (r *fakeTicketRepo) Delete(ctx context.Context, ticket *db_models.Ticket) error {
	delete(r.tickets, ticket.ID)
	return nil
}

type fakeTagRepo struct {
	tags map[string]*db_models.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*db_models.Tag)}
}

func (r *fakeTagRepo) Insert(ctx context.Context, tag *db_models.Tag) error {
	if tag.ID == "" {
		tag.ID = utils.NewID("tag")
	}
	cp := *tag
	r.tags[tag.ID] = &cp
	return nil
}

func (r *fakeTagRepo) FindByID(ctx context.Context, id string) (*db_models.Tag, error) {
	if tag, ok := r.tags[id]; ok {
		cp := *tag
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeTagRepo) FindByName(ctx context.Context, name string) (*db_models.Tag, error) {
	for _, tag := range r.tags {
		if tag.Name == name {
			cp := *tag
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTagRepo) FindAll(ctx context.Context) ([]db_models.Tag, error) {
	out := make([]db_models.Tag, 0, len(r.tags))
	for _, tag := range r.tags {
		out = append(out, *tag)
	}
	return out, nil
}

func (r *fakeTagRepo) Save(ctx context.Context, tag *db_models.Tag) error {
	cp := *tag
	r.tags[tag.ID] = &cp
	return nil
}

func (r *fakeTagRepo) Delete(ctx context.Context, tag *db_models.Tag) error {
	delete(r.tags, tag.ID)
	return nil
}

type fakeStorage struct {
	uploads   []string
	downloads []string
}

func (s *fakeStorage) PresignedUploadURL(ctx context.Context, object string, expiry time.Duration) (string, error) {
	s.uploads = append(s.uploads, object)
	return "https://storage.test/upload/" + object, nil
}

func (s *fakeStorage) PresignedDownloadURL(ctx context.Context, object string, expiry time.Duration) (string, error) {
	s.downloads = append(s.downloads, object)
	return "https://storage.test/download/" + object, nil
}

type fakeFileRepo struct {
	files map[string]*db_models.File
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[string]*db_models.File)}
}

func (r *fakeFileRepo) Insert(ctx context.Context, file *db_models.File) error {
	if file.ID == "" {
		file.ID = utils.NewID("file")
	}
	cp := *file
	r.files[file.ID] = &cp
	return nil
}

func (r *fakeFileRepo) FindByID(ctx context.Context, id string) (*db_models.File, error) {
	if file, ok := r.files[id]; ok {
		cp := *file
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeFileRepo) Find(ctx context.Context, filter repositories.FileFilter) ([]db_models.File, error) {
	var out []db_models.File
	for _, file := range r.files {
		if filter.AccountID != "" && (file.AccountID == nil || *file.AccountID != filter.AccountID) {
			continue
		}
		if filter.Category != "" && string(file.Category) != filter.Category {
			continue
		}
		out = append(out, *file)
	}
	return out, nil
}

func (r *fakeFileRepo) Save(ctx context.Context, file *db_models.File) error {
	cp := *file
	r.files[file.ID] = &cp
	return nil
}

func (r *fakeFileRepo) Delete(ctx context.Context, file *db_models.File) error {
	delete(r.files, file.ID)
	return nil
}
