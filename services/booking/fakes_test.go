package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "innkeep/database/repository/booking"
	"innkeep/models"
	"innkeep/services/payment"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Insert(b *models.Booking) error {
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) List(filter bookingRepo.ListFilter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if filter.CustomerID != "" && b.CustomerID != filter.CustomerID {
			continue
		}
		if filter.RoomID != "" && b.RoomID != filter.RoomID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateFields(id string, fields bson.M) error {
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("no booking matched")
	}
	for key, val := range fields {
		switch key {
		case "status":
			b.Status = val.(models.BookingStatus)
		case "status_remarks":
			b.StatusRemarks = val.(string)
		case "rating":
			b.Rating = val.(int)
		case "checked_in":
			b.CheckedIn = val.(bool)
		case "checkin_time":
			t := val.(time.Time)
			b.CheckinTime = &t
		case "checked_out":
			b.CheckedOut = val.(bool)
		case "checkout_time":
			t := val.(time.Time)
			b.CheckoutTime = &t
		case "payment_status":
			b.PaymentStatus = val.(bool)
		case "paid_date":
			t := val.(time.Time)
			b.PaidDate = &t
		}
	}
	b.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBookingRepo) CountOverlapping(roomID string, date time.Time) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.RoomID != roomID {
			continue
		}
		if !b.BookingStarts.After(date) && !b.BookingEnds.Before(date) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) Report() (*models.BookingReport, error) {
	report := &models.BookingReport{}
	for _, b := range f.bookings {
		report.TotalBookings++
		report.ServedPersons += int64(b.TotalPersons)
		switch b.Status {
		case models.StatusPending:
			report.PendingBookings++
		case models.StatusConfirmed:
			report.ConfirmedBookings++
			report.ConfirmedAmount += int64(b.Amount)
		case models.StatusRejected:
			report.RejectedBookings++
			report.RejectedAmount += int64(b.Amount)
		}
		if b.Status == models.StatusConfirmed && b.PaymentStatus {
			report.CollectedAmount += int64(b.Amount)
		}
		if (b.Status == models.StatusConfirmed || b.Status == models.StatusPending) && !b.PaymentStatus {
			report.PendingAmount += int64(b.Amount)
		}
	}
	return report, nil
}

// fakeCatalogRepo is an in-memory CatalogRepository; tests only exercise the
// room lookups.
type fakeCatalogRepo struct {
	rooms  map[string]*models.Room
	hotels map[string]*models.Hotel
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		rooms:  make(map[string]*models.Room),
		hotels: make(map[string]*models.Hotel),
	}
}

func (f *fakeCatalogRepo) GetRoomByID(id string) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeCatalogRepo) GetRoomByCode(code string) (*models.Room, error) {
	for _, r := range f.rooms {
		if r.RoomCode == code {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogRepo) ListRooms(hotelID string) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if hotelID == "" || r.HotelID == hotelID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateRoom(room *models.Room) error {
	cp := *room
	f.rooms[room.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) UpdateRoom(room *models.Room) error {
	cp := *room
	f.rooms[room.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) IncrementRoomViews(id string) error {
	if r, ok := f.rooms[id]; ok {
		r.ViewCount++
	}
	return nil
}

func (f *fakeCatalogRepo) GetHotelByID(id string) (*models.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (f *fakeCatalogRepo) ListHotels() ([]models.Hotel, error) { return nil, nil }

func (f *fakeCatalogRepo) CreateHotel(hotel *models.Hotel) error {
	cp := *hotel
	f.hotels[hotel.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) SaveMessage(msg *models.ContactMessage) error   { return nil }
func (f *fakeCatalogRepo) ListMessages() ([]models.ContactMessage, error) { return nil, nil }

// fakeMethodRepo is an in-memory PaymentMethodRepository.
type fakeMethodRepo struct {
	methods map[string]*models.PaymentMethod
}

func newFakeMethodRepo() *fakeMethodRepo {
	return &fakeMethodRepo{methods: make(map[string]*models.PaymentMethod)}
}

func (f *fakeMethodRepo) GetByID(id string) (*models.PaymentMethod, error) {
	m, ok := f.methods[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMethodRepo) List() ([]models.PaymentMethod, error) {
	var out []models.PaymentMethod
	for _, m := range f.methods {
		out = append(out, *m)
	}
	return out, nil
}

// fakeSessionStore is an in-memory SessionStore with the same
// one-session-per-customer replacement semantics as the Redis store.
type fakeSessionStore struct {
	byToken    map[string]models.PaymentSession
	byCustomer map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		byToken:    make(map[string]models.PaymentSession),
		byCustomer: make(map[string]string),
	}
}

func (f *fakeSessionStore) Put(_ context.Context, session models.PaymentSession) error {
	if prior, ok := f.byCustomer[session.CustomerID]; ok {
		delete(f.byToken, prior)
	}
	f.byToken[session.SessionID] = session
	f.byCustomer[session.CustomerID] = session.SessionID
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, sessionID string) (*models.PaymentSession, error) {
	s, ok := f.byToken[sessionID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, session models.PaymentSession) error {
	delete(f.byToken, session.SessionID)
	if f.byCustomer[session.CustomerID] == session.SessionID {
		delete(f.byCustomer, session.CustomerID)
	}
	return nil
}

// fakeGateway scripts the provider's answers.
type fakeGateway struct {
	verdict     payment.Verdict
	err         error
	verifyCalls int
	lastToken   string
	lastAmount  int
}

func (f *fakeGateway) RequestPayment(session models.PaymentSession, method models.PaymentMethod) models.PaymentContext {
	return models.PaymentContext{
		SessionID:  session.SessionID,
		PaymentURL: method.PaymentURL,
		PublicKey:  method.PublicKey(false),
		Amount:     session.Amount,
		ReturnURL:  method.ReturnURL,
	}
}

func (f *fakeGateway) VerifyPayment(_ context.Context, _ models.PaymentMethod, token string, amount int) (payment.Verdict, error) {
	f.verifyCalls++
	f.lastToken = token
	f.lastAmount = amount
	return f.verdict, f.err
}

// fakeReminders records scheduled reminders.
type fakeReminders struct {
	scheduled []models.PaymentSession
	err       error
}

func (f *fakeReminders) SchedulePaymentReminder(session models.PaymentSession) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, session)
	return nil
}

// testService wires a service over fresh fakes.
func testService() (*DefaultBookingService, *fakeBookingRepo, *fakeCatalogRepo, *fakeMethodRepo, *fakeSessionStore, *fakeGateway, *fakeReminders) {
	bookings := newFakeBookingRepo()
	catalog := newFakeCatalogRepo()
	methods := newFakeMethodRepo()
	sessions := newFakeSessionStore()
	gateway := &fakeGateway{verdict: payment.VerdictVerified}
	reminders := &fakeReminders{}

	svc := &DefaultBookingService{
		Catalog:    catalog,
		Bookings:   bookings,
		Methods:    methods,
		Gateway:    gateway,
		Sessions:   sessions,
		Reminders:  reminders,
		ReturnBase: "http://localhost:8080",
	}
	return svc, bookings, catalog, methods, sessions, gateway, reminders
}

func seedRoom(catalog *fakeCatalogRepo, id string, price, capacity int) *models.Room {
	room := &models.Room{
		ID:              id,
		HotelID:         "hotel-1",
		RoomType:        models.RoomTypeDouble,
		RoomCode:        "D-" + id,
		Price:           price,
		MaximumCapacity: capacity,
	}
	catalog.CreateRoom(room)
	return room
}

func seedMethod(methods *fakeMethodRepo, id string, gateway bool) *models.PaymentMethod {
	m := &models.PaymentMethod{
		ID:   id,
		Name: "Khalti",
	}
	if gateway {
		m.PaymentURL = "https://pay.example.com/start"
		m.VerifyURL = "https://pay.example.com/verify"
		m.TestPublicKey = "test_public_key_x"
		m.TestSecretKey = "test_secret_key_x"
	} else {
		m.Name = "Pay at Hotel"
	}
	f := *m
	methods.methods[id] = &f
	return m
}

func customer(id string) models.Principal {
	return models.Principal{Kind: models.PrincipalCustomer, Subject: id}
}

func admin() models.Principal {
	return models.Principal{Kind: models.PrincipalAdmin, Subject: "staff-1"}
}
