// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/pronimal/pronim-admin/internal/model"
)

// Banners

const listBanners = `
SELECT id, title, image_url, position, created_at, updated_at
FROM banners ORDER BY created_at DESC
`

// ListBanners returns all banners, newest first.
func (q *Queries) ListBanners(ctx context.Context) ([]model.Banner, error) {
	rows, err := q.db.QueryContext(ctx, listBanners)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []model.Banner
	for rows.Next() {
		var b model.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.Position,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

const getBannerByID = `
SELECT id, title, image_url, position, created_at, updated_at
FROM banners WHERE id = ?
`

// GetBannerByID returns the banner with the given ID.
func (q *Queries) GetBannerByID(ctx context.Context, id string) (model.Banner, error) {
	var b model.Banner
	err := q.db.QueryRowContext(ctx, getBannerByID, id).Scan(
		&b.ID, &b.Title, &b.ImageURL, &b.Position, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const createBanner = `
INSERT INTO banners (id, title, image_url, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`

// CreateBannerParams holds the fields for CreateBanner.
type CreateBannerParams struct {
	ID       string
	Title    string
	ImageURL string
	Position string
}

// CreateBanner inserts a new banner.
func (q *Queries) CreateBanner(ctx context.Context, arg CreateBannerParams) (model.Banner, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, createBanner,
		arg.ID, arg.Title, arg.ImageURL, arg.Position, now, now)
	if err != nil {
		return model.Banner{}, err
	}
	return model.Banner{
		ID: arg.ID, Title: arg.Title, ImageURL: arg.ImageURL,
		Position: arg.Position, CreatedAt: now, UpdatedAt: now,
	}, nil
}

const updateBanner = `
UPDATE banners SET title = ?, image_url = ?, position = ?, updated_at = ? WHERE id = ?
`

// UpdateBannerParams holds the fields for UpdateBanner.
type UpdateBannerParams struct {
	ID       string
	Title    string
	ImageURL string
	Position string
}

// UpdateBanner replaces the mutable fields of a banner.
func (q *Queries) UpdateBanner(ctx context.Context, arg UpdateBannerParams) error {
	_, err := q.db.ExecContext(ctx, updateBanner,
		arg.Title, arg.ImageURL, arg.Position, time.Now().UTC(), arg.ID)
	return err
}

const deleteBanner = `DELETE FROM banners WHERE id = ?`

// DeleteBanner removes a banner.
func (q *Queries) DeleteBanner(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteBanner, id)
	return err
}

const countBanners = `SELECT COUNT(*) FROM banners`

// CountBanners returns the total number of banners.
func (q *Queries) CountBanners(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countBanners).Scan(&count)
	return count, err
}

// Agents

const listAgents = `
SELECT id, name, email, agency, status, created_at, updated_at
FROM agents ORDER BY created_at DESC
`

// ListAgents returns all agents, newest first.
func (q *Queries) ListAgents(ctx context.Context) ([]model.Agent, error) {
	rows, err := q.db.QueryContext(ctx, listAgents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []model.Agent
	for rows.Next() {
		var a model.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Agency, &a.Status,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

const getAgentByID = `
SELECT id, name, email, agency, status, created_at, updated_at
FROM agents WHERE id = ?
`

// GetAgentByID returns the agent with the given ID.
func (q *Queries) GetAgentByID(ctx context.Context, id string) (model.Agent, error) {
	var a model.Agent
	err := q.db.QueryRowContext(ctx, getAgentByID, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Agency, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

const createAgent = `
INSERT INTO agents (id, name, email, agency, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

// CreateAgentParams holds the fields for CreateAgent.
type CreateAgentParams struct {
	ID     string
	Name   string
	Email  string
	Agency string
	Status string
}

// CreateAgent inserts a new agent.
func (q *Queries) CreateAgent(ctx context.Context, arg CreateAgentParams) (model.Agent, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, createAgent,
		arg.ID, arg.Name, arg.Email, arg.Agency, arg.Status, now, now)
	if err != nil {
		return model.Agent{}, err
	}
	return model.Agent{
		ID: arg.ID, Name: arg.Name, Email: arg.Email, Agency: arg.Agency,
		Status: arg.Status, CreatedAt: now, UpdatedAt: now,
	}, nil
}

const updateAgent = `
UPDATE agents SET name = ?, email = ?, agency = ?, status = ?, updated_at = ? WHERE id = ?
`

// UpdateAgentParams holds the fields for UpdateAgent.
type UpdateAgentParams struct {
	ID     string
	Name   string
	Email  string
	Agency string
	Status string
}

// UpdateAgent replaces the mutable fields of an agent.
func (q *Queries) UpdateAgent(ctx context.Context, arg UpdateAgentParams) error {
	_, err := q.db.ExecContext(ctx, updateAgent,
		arg.Name, arg.Email, arg.Agency, arg.Status, time.Now().UTC(), arg.ID)
	return err
}

const deleteAgent = `DELETE FROM agents WHERE id = ?`

// DeleteAgent removes an agent.
func (q *Queries) DeleteAgent(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteAgent, id)
	return err
}

const countAgents = `SELECT COUNT(*) FROM agents`

// CountAgents returns the total number of agents.
func (q *Queries) CountAgents(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countAgents).Scan(&count)
	return count, err
}

// Agencies

const listAgencies = `
SELECT id, name, location, category, employees, created_at, updated_at
FROM agencies ORDER BY created_at DESC
`

// ListAgencies returns all agencies, newest first.
func (q *Queries) ListAgencies(ctx context.Context) ([]model.Agency, error) {
	rows, err := q.db.QueryContext(ctx, listAgencies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agencies []model.Agency
	for rows.Next() {
		var a model.Agency
		if err := rows.Scan(&a.ID, &a.Name, &a.Location, &a.Category, &a.Employees,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		agencies = append(agencies, a)
	}
	return agencies, rows.Err()
}

const getAgencyByID = `
SELECT id, name, location, category, employees, created_at, updated_at
FROM agencies WHERE id = ?
`

// GetAgencyByID returns the agency with the given ID.
func (q *Queries) GetAgencyByID(ctx context.Context, id string) (model.Agency, error) {
	var a model.Agency
	err := q.db.QueryRowContext(ctx, getAgencyByID, id).Scan(
		&a.ID, &a.Name, &a.Location, &a.Category, &a.Employees, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

const createAgency = `
INSERT INTO agencies (id, name, location, category, employees, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

// CreateAgencyParams holds the fields for CreateAgency.
type CreateAgencyParams struct {
	ID        string
	Name      string
	Location  string
	Category  string
	Employees int64
}

// CreateAgency inserts a new agency.
func (q *Queries) CreateAgency(ctx context.Context, arg CreateAgencyParams) (model.Agency, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, createAgency,
		arg.ID, arg.Name, arg.Location, arg.Category, arg.Employees, now, now)
	if err != nil {
		return model.Agency{}, err
	}
	return model.Agency{
		ID: arg.ID, Name: arg.Name, Location: arg.Location, Category: arg.Category,
		Employees: arg.Employees, CreatedAt: now, UpdatedAt: now,
	}, nil
}

const updateAgency = `
UPDATE agencies SET name = ?, location = ?, category = ?, employees = ?, updated_at = ? WHERE id = ?
`

// UpdateAgencyParams holds the fields for UpdateAgency.
type UpdateAgencyParams struct {
	ID        string
	Name      string
	Location  string
	Category  string
	Employees int64
}

// UpdateAgency replaces the mutable fields of an agency.
func (q *Queries) UpdateAgency(ctx context.Context, arg UpdateAgencyParams) error {
	_, err := q.db.ExecContext(ctx, updateAgency,
		arg.Name, arg.Location, arg.Category, arg.Employees, time.Now().UTC(), arg.ID)
	return err
}

const deleteAgency = `DELETE FROM agencies WHERE id = ?`

// DeleteAgency removes an agency.
func (q *Queries) DeleteAgency(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteAgency, id)
	return err
}

const countAgencies = `SELECT COUNT(*) FROM agencies`

// CountAgencies returns the total number of agencies.
func (q *Queries) CountAgencies(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countAgencies).Scan(&count)
	return count, err
}

// Owners

const listOwners = `
SELECT id, name, email, properties, created_at, updated_at
FROM owners ORDER BY created_at DESC
`

// ListOwners returns all property owners, newest first.
func (q *Queries) ListOwners(ctx context.Context) ([]model.Owner, error) {
	rows, err := q.db.QueryContext(ctx, listOwners)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owners []model.Owner
	for rows.Next() {
		var o model.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.Properties,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

const getOwnerByID = `
SELECT id, name, email, properties, created_at, updated_at
FROM owners WHERE id = ?
`

// GetOwnerByID returns the owner with the given ID.
func (q *Queries) GetOwnerByID(ctx context.Context, id string) (model.Owner, error) {
	var o model.Owner
	err := q.db.QueryRowContext(ctx, getOwnerByID, id).Scan(
		&o.ID, &o.Name, &o.Email, &o.Properties, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const createOwner = `
INSERT INTO owners (id, name, email, properties, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`

// CreateOwnerParams holds the fields for CreateOwner.
type CreateOwnerParams struct {
	ID         string
	Name       string
	Email      string
	Properties int64
}

// CreateOwner inserts a new property owner.
func (q *Queries) CreateOwner(ctx context.Context, arg CreateOwnerParams) (model.Owner, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, createOwner,
		arg.ID, arg.Name, arg.Email, arg.Properties, now, now)
	if err != nil {
		return model.Owner{}, err
	}
	return model.Owner{
		ID: arg.ID, Name: arg.Name, Email: arg.Email,
		Properties: arg.Properties, CreatedAt: now, UpdatedAt: now,
	}, nil
}

const updateOwner = `
UPDATE owners SET name = ?, email = ?, properties = ?, updated_at = ? WHERE id = ?
`

// UpdateOwnerParams holds the fields for UpdateOwner.
type UpdateOwnerParams struct {
	ID         string
	Name       string
	Email      string
	Properties int64
}

// UpdateOwner replaces the mutable fields of an owner.
func (q *Queries) UpdateOwner(ctx context.Context, arg UpdateOwnerParams) error {
	_, err := q.db.ExecContext(ctx, updateOwner,
		arg.Name, arg.Email, arg.Properties, time.Now().UTC(), arg.ID)
	return err
}

const deleteOwner = `DELETE FROM owners WHERE id = ?`

// DeleteOwner removes an owner.
func (q *Queries) DeleteOwner(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteOwner, id)
	return err
}

const countOwners = `SELECT COUNT(*) FROM owners`

// CountOwners returns the total number of owners.
func (q *Queries) CountOwners(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countOwners).Scan(&count)
	return count, err
}
