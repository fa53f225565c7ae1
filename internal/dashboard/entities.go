// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package dashboard

// The dashboard entity types mirror the API wire shapes. Each one
// implements Entity so the bindings, collection state, form controller
// and list views can be instantiated per page.

// Banner is a homepage banner entry.
type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Position string `json:"position"`
}

func (b Banner) RecordID() string        { return b.ID }
func (b Banner) Clone() Banner           { return b }
func (b Banner) WithID(id string) Banner { b.ID = id; return b }

// Agent is a real-estate agent entry.
type Agent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Agency string `json:"agency"`
	Status string `json:"status"`
}

func (a Agent) RecordID() string       { return a.ID }
func (a Agent) Clone() Agent           { return a }
func (a Agent) WithID(id string) Agent { a.ID = id; return a }

// Agency is a real-estate agency entry.
type Agency struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Category  string `json:"category"`
	Employees int64  `json:"employees"`
}

func (a Agency) RecordID() string        { return a.ID }
func (a Agency) Clone() Agency           { return a }
func (a Agency) WithID(id string) Agency { a.ID = id; return a }

// Owner is a property owner entry.
type Owner struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Properties int64  `json:"properties"`
}

func (o Owner) RecordID() string       { return o.ID }
func (o Owner) Clone() Owner           { return o }
func (o Owner) WithID(id string) Owner { o.ID = id; return o }

// Faq is a question/answer entry with a category discriminator.
type Faq struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int64  `json:"order"`
}

func (f Faq) RecordID() string     { return f.ID }
func (f Faq) Clone() Faq           { return f }
func (f Faq) WithID(id string) Faq { f.ID = id; return f }

// Subscriber is a newsletter subscription entry.
type Subscriber struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
}

func (s Subscriber) RecordID() string            { return s.ID }
func (s Subscriber) Clone() Subscriber           { return s }
func (s Subscriber) WithID(id string) Subscriber { s.ID = id; return s }

// Message is a contact-form submission entry.
type Message struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	IsRead   bool   `json:"isRead"`
}

func (m Message) RecordID() string         { return m.ID }
func (m Message) Clone() Message           { return m }
func (m Message) WithID(id string) Message { m.ID = id; return m }

// Blog is a blog post entry. Description and Content hold rich-text
// markup.
type Blog struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Content     string `json:"content"`
	Format      string `json:"format"`
}

func (b Blog) RecordID() string      { return b.ID }
func (b Blog) Clone() Blog           { return b }
func (b Blog) WithID(id string) Blog { b.ID = id; return b }

// Default collections seeded into bolt slots on first access, matching
// the dashboard pages' initial state.

// DefaultBanners seeds the banners slot.
func DefaultBanners() []Banner {
	return []Banner{
		{ID: NewRecordID(), Title: "Gjeni pronën tuaj", ImageURL: "/uploads/banners/hero.jpg", Position: "hero"},
	}
}

// DefaultAgents seeds the agents slot.
func DefaultAgents() []Agent {
	return []Agent{
		{ID: NewRecordID(), Name: "Ardit Hoxha", Email: "ardit@pronim.al", Agency: "Tirana Homes", Status: "Active"},
		{ID: NewRecordID(), Name: "Elira Kola", Email: "elira@pronim.al", Agency: "Adriatic Estates", Status: "Active"},
	}
}

// DefaultAgencies seeds the agencies slot.
func DefaultAgencies() []Agency {
	return []Agency{
		{ID: NewRecordID(), Name: "Tirana Homes", Location: "Tirana", Category: "Residential", Employees: 12},
		{ID: NewRecordID(), Name: "Adriatic Estates", Location: "Durrës", Category: "Commercial", Employees: 7},
	}
}

// DefaultOwners seeds the owners slot.
func DefaultOwners() []Owner {
	return []Owner{
		{ID: NewRecordID(), Name: "Artan Shehu", Email: "artan@example.com", Properties: 3},
	}
}

// DefaultFaqs seeds the faqs slot.
func DefaultFaqs() []Faq {
	return []Faq{
		{ID: NewRecordID(), Question: "Si mund të listoj një pronë?", Answer: "<p>Kontaktoni një nga agjentët tanë.</p>", Category: "general", Order: 1},
		{ID: NewRecordID(), Question: "A ofroni vlerësim prone?", Answer: "<p>Po, vlerësimi fillestar është falas.</p>", Category: "services", Order: 2},
	}
}
