package dto

import (
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/pkg/utils"
)

// ToTenant converts a CreateTenantRequest DTO to a Tenant domain model
func (r *CreateTenantRequest) ToTenant() *domain.Tenant {
	currency := r.Currency
	if currency == "" {
		currency = "USD"
	}
	locale := r.Locale
	if locale == "" {
		locale = "en"
	}
	return &domain.Tenant{
		Name:       r.Name,
		Slug:       r.Slug,
		Email:      r.Email,
		Currency:   currency,
		Locale:     locale,
		Country:    r.Country,
		City:       r.City,
		Address:    r.Address,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Categories: r.Categories,
	}
}

// FromTenant converts a Tenant domain model to a TenantResponse DTO
func FromTenant(t *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:                 t.ID,
		Name:               t.Name,
		Slug:               t.Slug,
		Email:              t.Email,
		Description:        t.Description,
		Currency:           t.Currency,
		Locale:             t.Locale,
		Country:            t.Country,
		City:               t.City,
		Address:            t.Address,
		Latitude:           t.Latitude,
		Longitude:          t.Longitude,
		Categories:         t.Categories,
		Discoverable:       t.Discoverable,
		Featured:           t.Featured,
		SubscriptionStatus: string(t.SubscriptionStatus),
		SubscriptionPlan:   t.SubscriptionPlan,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

// ToRoom converts a CreateRoomRequest DTO to a Room domain model
func (r *CreateRoomRequest) ToRoom(tenantID string) *domain.Room {
	room := &domain.Room{
		TenantID:          tenantID,
		Name:              r.Name,
		Description:       r.Description,
		BasePricePerNight: r.BasePricePerNight,
		Currency:          r.Currency,
		MaxGuests:         r.MaxGuests,
		TotalUnits:        r.TotalUnits,
		MinStayNights:     r.MinStayNights,
		MaxStayNights:     r.MaxStayNights,
		Active:            true,
	}
	if room.Currency == "" {
		room.Currency = "USD"
	}
	if room.MaxGuests == 0 {
		room.MaxGuests = 2
	}
	if room.TotalUnits == 0 {
		room.TotalUnits = 1
	}
	if room.MinStayNights == 0 {
		room.MinStayNights = 1
	}
	return room
}

// FromRoom converts a Room domain model to a RoomResponse DTO
func FromRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:                room.ID,
		TenantID:          room.TenantID,
		Name:              room.Name,
		Description:       room.Description,
		BasePricePerNight: room.BasePricePerNight,
		Currency:          room.Currency,
		MaxGuests:         room.MaxGuests,
		TotalUnits:        room.TotalUnits,
		MinStayNights:     room.MinStayNights,
		MaxStayNights:     room.MaxStayNights,
		Active:            room.Active,
		CreatedAt:         room.CreatedAt,
		UpdatedAt:         room.UpdatedAt,
	}
}

func FromRooms(rooms []domain.Room) []RoomResponse {
	responses := make([]RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = *FromRoom(&rooms[i])
	}
	return responses
}

// FromBooking converts a Booking domain model to a BookingResponse DTO
func FromBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID,
		TenantID:       b.TenantID,
		RoomID:         b.RoomID,
		CustomerID:     b.CustomerID,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		GuestPhone:     b.GuestPhone,
		CheckIn:        utils.FormatDate(b.CheckIn),
		CheckOut:       utils.FormatDate(b.CheckOut),
		Guests:         b.Guests,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		TotalAmount:    b.TotalAmount,
		Currency:       b.Currency,
		CouponID:       b.CouponID,
		DiscountAmount: b.DiscountAmount,
		Source:         string(b.Source),
		ExternalRef:    b.ExternalRef,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func FromBookings(bookings []domain.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *FromBooking(&bookings[i])
	}
	return responses
}

// FromConflicts projects conflicting bookings into their display shape
func FromConflicts(bookings []domain.Booking) []ConflictResponse {
	conflicts := make([]ConflictResponse, len(bookings))
	for i, b := range bookings {
		conflicts[i] = ConflictResponse{
			ID:        b.ID,
			GuestName: b.GuestName,
			Source:    string(b.Source),
			CheckIn:   utils.FormatDate(b.CheckIn),
			CheckOut:  utils.FormatDate(b.CheckOut),
			Status:    string(b.Status),
		}
	}
	return conflicts
}

// FromSeasonalRate converts a SeasonalRate domain model to its response DTO
func FromSeasonalRate(rate *domain.SeasonalRate) *SeasonalRateResponse {
	return &SeasonalRateResponse{
		ID:            rate.ID,
		RoomID:        rate.RoomID,
		Name:          rate.Name,
		StartDate:     utils.FormatDate(rate.StartDate),
		EndDate:       utils.FormatDate(rate.EndDate),
		PricePerNight: rate.PricePerNight,
		Priority:      rate.Priority,
	}
}

func FromSeasonalRates(rates []domain.SeasonalRate) []SeasonalRateResponse {
	responses := make([]SeasonalRateResponse, len(rates))
	for i := range rates {
		responses[i] = *FromSeasonalRate(&rates[i])
	}
	return responses
}

// FromCoupon converts a Coupon domain model to a CouponResponse DTO
func FromCoupon(c *domain.Coupon) *CouponResponse {
	resp := &CouponResponse{
		ID:            c.ID,
		Code:          c.Code,
		DiscountType:  string(c.DiscountType),
		DiscountValue: c.DiscountValue,
		MaxUses:       c.MaxUses,
		UsedCount:     c.UsedCount,
		Active:        c.Active,
	}
	if c.ValidFrom != nil {
		resp.ValidFrom = utils.FormatDate(*c.ValidFrom)
	}
	if c.ValidUntil != nil {
		resp.ValidUntil = utils.FormatDate(*c.ValidUntil)
	}
	return resp
}

func FromCoupons(coupons []domain.Coupon) []CouponResponse {
	responses := make([]CouponResponse, len(coupons))
	for i := range coupons {
		responses[i] = *FromCoupon(&coupons[i])
	}
	return responses
}

// FromAddon converts an Addon domain model to an AddonResponse DTO
func FromAddon(a *domain.Addon) *AddonResponse {
	return &AddonResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Price:       a.Price,
		PerNight:    a.PerNight,
		Active:      a.Active,
	}
}

func FromAddons(addons []domain.Addon) []AddonResponse {
	responses := make([]AddonResponse, len(addons))
	for i := range addons {
		responses[i] = *FromAddon(&addons[i])
	}
	return responses
}

// FromProperty converts a PropertySummary to a PropertyResponse DTO
func FromProperty(p *domain.PropertySummary) *PropertyResponse {
	return &PropertyResponse{
		TenantID:        p.TenantID,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Country:         p.Country,
		City:            p.City,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		Categories:      p.Categories,
		Featured:        p.Featured,
		Currency:        p.Currency,
		MinNightlyPrice: p.MinNightlyPrice,
		ReviewCount:     p.ReviewCount,
		AvgRating:       p.AvgRating,
		HasActiveCoupon: p.HasActiveCoupon,
	}
}

func FromProperties(properties []domain.PropertySummary) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = *FromProperty(&properties[i])
	}
	return responses
}

// FromNotification converts a Notification domain model to its response DTO
func FromNotification(n *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:         n.ID,
		TenantID:   n.TenantID,
		CustomerID: n.CustomerID,
		Type:       string(n.Type),
		Title:      n.Title,
		Body:       n.Body,
		BookingID:  n.BookingID,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}
}

func FromNotifications(notifications []domain.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = *FromNotification(&notifications[i])
	}
	return responses
}

// FromActivity converts an ActivityEntry to an ActivityResponse DTO
func FromActivity(e *domain.ActivityEntry) *ActivityResponse {
	return &ActivityResponse{
		ID:           e.ID,
		Action:       string(e.Action),
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		Actor:        e.Actor,
		Message:      e.Message,
		CreatedAt:    e.CreatedAt,
	}
}

func FromActivities(entries []domain.ActivityEntry) []ActivityResponse {
	responses := make([]ActivityResponse, len(entries))
	for i := range entries {
		responses[i] = *FromActivity(&entries[i])
	}
	return responses
}

// FromSupportThread converts a SupportThread with its messages
func FromSupportThread(t *domain.SupportThread) *SupportThreadResponse {
	resp := &SupportThreadResponse{
		ID:         t.ID,
		CustomerID: t.CustomerID,
		Subject:    t.Subject,
		Status:     string(t.Status),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	for i := range t.Messages {
		resp.Messages = append(resp.Messages, *FromSupportMessage(&t.Messages[i]))
	}
	return resp
}

func FromSupportThreads(threads []domain.SupportThread) []SupportThreadResponse {
	responses := make([]SupportThreadResponse, len(threads))
	for i := range threads {
		responses[i] = *FromSupportThread(&threads[i])
	}
	return responses
}

func FromSupportMessage(m *domain.SupportMessage) *SupportMessageResponse {
	return &SupportMessageResponse{
		ID:         m.ID,
		ThreadID:   m.ThreadID,
		AuthorType: string(m.AuthorType),
		AuthorID:   m.AuthorID,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
	}
}
