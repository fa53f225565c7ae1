// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pronimal/pronim-admin/internal/auth"
	"github.com/pronimal/pronim-admin/internal/model"
)

// SeedParams configures initial data creation.
type SeedParams struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	// Demo also seeds sample directory and content collections.
	Demo bool
}

// Seed creates the bootstrap admin account and default singleton rows. It is
// safe to run on every startup; existing rows are left untouched.
func Seed(ctx context.Context, db *sql.DB, params SeedParams) error {
	queries := New(db)

	if err := seedAdmin(ctx, queries, params); err != nil {
		return err
	}
	if err := seedPages(ctx, queries); err != nil {
		return err
	}
	if params.Demo {
		if err := seedDemo(ctx, queries); err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, queries *Queries, params SeedParams) error {
	_, err := queries.GetUserByIdentifier(ctx, params.AdminUsername)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(params.AdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := queries.CreateUser(ctx, CreateUserParams{
		ID:           uuid.NewString(),
		Username:     params.AdminUsername,
		Email:        params.AdminEmail,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created admin user", "id", user.ID, "username", user.Username)
	return nil
}

func seedPages(ctx context.Context, queries *Queries) error {
	defaults := []UpsertStaticPageParams{
		{
			Kind:    model.PageKindPrivacy,
			Title:   "Privacy Policy",
			Content: "<p>Privacy policy content goes here.</p>",
			Format:  model.ContentFormatHTML,
		},
		{
			Kind:    model.PageKindTerms,
			Title:   "Terms and Conditions",
			Content: "<p>Terms and conditions content goes here.</p>",
			Format:  model.ContentFormatHTML,
		},
	}

	for _, page := range defaults {
		if _, err := queries.GetStaticPage(ctx, page.Kind); err == nil {
			continue
		} else if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking static page %s: %w", page.Kind, err)
		}
		if _, err := queries.UpsertStaticPage(ctx, page); err != nil {
			return fmt.Errorf("seeding static page %s: %w", page.Kind, err)
		}
	}

	if _, err := queries.GetContactInfo(ctx); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking contact info: %w", err)
		}
		_, err = queries.UpsertContactInfo(ctx, UpsertContactInfoParams{
			Address:      "Tirana, Albania",
			Phone:        "+355 69 000 0000",
			Email:        "info@pronim.al",
			WorkingHours: "Mon-Fri 09:00-18:00",
		})
		if err != nil {
			return fmt.Errorf("seeding contact info: %w", err)
		}
	}

	return nil
}

// seedDemo populates sample collections for local development.
func seedDemo(ctx context.Context, queries *Queries) error {
	count, err := queries.CountAgents(ctx)
	if err != nil {
		return fmt.Errorf("counting agents: %w", err)
	}
	if count > 0 {
		return nil
	}

	agents := []CreateAgentParams{
		{ID: uuid.NewString(), Name: "Ardit Hoxha", Email: "ardit@pronim.al", Agency: "Tirana Homes", Status: model.AgentStatusActive},
		{ID: uuid.NewString(), Name: "Elira Kola", Email: "elira@pronim.al", Agency: "Adriatic Estates", Status: model.AgentStatusActive},
		{ID: uuid.NewString(), Name: "Besnik Rama", Email: "besnik@pronim.al", Agency: "Tirana Homes", Status: model.AgentStatusInactive},
	}
	for _, a := range agents {
		if _, err := queries.CreateAgent(ctx, a); err != nil {
			return fmt.Errorf("seeding agent: %w", err)
		}
	}

	agencies := []CreateAgencyParams{
		{ID: uuid.NewString(), Name: "Tirana Homes", Location: "Tirana", Category: "Residential", Employees: 12},
		{ID: uuid.NewString(), Name: "Adriatic Estates", Location: "Durres", Category: "Commercial", Employees: 7},
	}
	for _, a := range agencies {
		if _, err := queries.CreateAgency(ctx, a); err != nil {
			return fmt.Errorf("seeding agency: %w", err)
		}
	}

	owners := []CreateOwnerParams{
		{ID: uuid.NewString(), Name: "Luan Shehu", Email: "luan@example.com", Properties: 3},
		{ID: uuid.NewString(), Name: "Mira Dervishi", Email: "mira@example.com", Properties: 1},
	}
	for _, o := range owners {
		if _, err := queries.CreateOwner(ctx, o); err != nil {
			return fmt.Errorf("seeding owner: %w", err)
		}
	}

	faqs := []CreateFaqParams{
		{ID: uuid.NewString(), Question: "How do I list a property?", Answer: "Contact one of our partner agencies to get started.", Category: model.FaqCategoryOwners, Position: 1},
		{ID: uuid.NewString(), Question: "Is registration free?", Answer: "Yes, browsing and registration are free of charge.", Category: model.FaqCategoryGeneral, Position: 1},
	}
	for _, f := range faqs {
		if _, err := queries.CreateFaq(ctx, f); err != nil {
			return fmt.Errorf("seeding faq: %w", err)
		}
	}

	slog.Info("seeded demo collections")
	return nil
}
