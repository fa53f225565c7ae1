// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

// pronim-dash is a terminal companion to the admin dashboard. It works
// the same collections the web pages do, against either the REST API or
// a local bolt file.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pronimal/pronim-admin/internal/dashboard"
)

func main() {
	mode := flag.String("mode", "local", "Storage binding: local (bolt file) or rest (HTTP API)")
	dbPath := flag.String("db", "pronim-dash.db", "Bolt file path (local mode)")
	baseURL := flag.String("url", "http://localhost:3000/api/v1", "API base URL (rest mode)")
	token := flag.String("token", "", "Static bearer token (rest mode)")
	tokenFile := flag.String("token-file", "", "File holding the bearer token (rest mode)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "pronim-dash - Pronim.al dashboard CLI\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options] <collection> <action> [args]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Collections: agents, agencies, owners, banners, faqs, newsletters, send-messages\n")
		_, _ = fmt.Fprintf(os.Stderr, "Actions:     list | delete <id> | view <id>\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(runOptions{
		mode:       *mode,
		dbPath:     *dbPath,
		baseURL:    *baseURL,
		token:      *token,
		tokenFile:  *tokenFile,
		collection: flag.Arg(0),
		action:     flag.Arg(1),
		args:       flag.Args()[2:],
	}); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type runOptions struct {
	mode       string
	dbPath     string
	baseURL    string
	token      string
	tokenFile  string
	collection string
	action     string
	args       []string
}

func (o runOptions) tokens() dashboard.TokenSource {
	if o.tokenFile != "" {
		return dashboard.FileToken{Path: o.tokenFile}
	}
	if o.token != "" {
		return dashboard.StaticToken(o.token)
	}
	return nil
}

func run(opts runOptions) error {
	ctx := context.Background()

	var store *dashboard.Store
	if opts.mode == "local" {
		var err error
		store, err = dashboard.OpenStore(opts.dbPath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	switch opts.collection {
	case "agents":
		return runEntity(ctx, opts, store, "agents", "/admin/agents", dashboard.DefaultAgents, entityView[dashboard.Agent]{
			columns: []dashboard.Column[dashboard.Agent]{
				{Title: "ID", Value: func(a dashboard.Agent) string { return a.ID }},
				{Title: "Name", Value: func(a dashboard.Agent) string { return a.Name }},
				{Title: "Email", Value: func(a dashboard.Agent) string { return a.Email }},
				{Title: "Agency", Value: func(a dashboard.Agent) string { return a.Agency }},
				{Title: "Status", Value: func(a dashboard.Agent) string { return a.Status }},
			},
		})
	case "agencies":
		return runEntity(ctx, opts, store, "agencies", "/admin/agencies", dashboard.DefaultAgencies, entityView[dashboard.Agency]{
			columns: []dashboard.Column[dashboard.Agency]{
				{Title: "ID", Value: func(a dashboard.Agency) string { return a.ID }},
				{Title: "Name", Value: func(a dashboard.Agency) string { return a.Name }},
				{Title: "Location", Value: func(a dashboard.Agency) string { return a.Location }},
				{Title: "Category", Value: func(a dashboard.Agency) string { return a.Category }},
				{Title: "Employees", Value: func(a dashboard.Agency) string { return strconv.FormatInt(a.Employees, 10) }},
			},
		})
	case "owners":
		return runEntity(ctx, opts, store, "owners", "/admin/owners", dashboard.DefaultOwners, entityView[dashboard.Owner]{
			columns: []dashboard.Column[dashboard.Owner]{
				{Title: "ID", Value: func(o dashboard.Owner) string { return o.ID }},
				{Title: "Name", Value: func(o dashboard.Owner) string { return o.Name }},
				{Title: "Email", Value: func(o dashboard.Owner) string { return o.Email }},
				{Title: "Properties", Value: func(o dashboard.Owner) string { return strconv.FormatInt(o.Properties, 10) }},
			},
		})
	case "banners":
		return runEntity(ctx, opts, store, "banners", "/admin/banners", dashboard.DefaultBanners, entityView[dashboard.Banner]{
			columns: []dashboard.Column[dashboard.Banner]{
				{Title: "ID", Value: func(b dashboard.Banner) string { return b.ID }},
				{Title: "Title", Value: func(b dashboard.Banner) string { return b.Title }},
				{Title: "Image", Value: func(b dashboard.Banner) string { return b.ImageURL }},
				{Title: "Position", Value: func(b dashboard.Banner) string { return b.Position }},
			},
		})
	case "faqs":
		return runEntity(ctx, opts, store, "faqs", "/admin/faqs", dashboard.DefaultFaqs, entityView[dashboard.Faq]{
			accordion: func(f dashboard.Faq) (string, string) { return f.Question, f.Answer },
		})
	case "newsletters":
		return runEntity(ctx, opts, store, "newsletters", "/admin/newsletters", nil, entityView[dashboard.Subscriber]{
			columns: []dashboard.Column[dashboard.Subscriber]{
				{Title: "ID", Value: func(s dashboard.Subscriber) string { return s.ID }},
				{Title: "Email", Value: func(s dashboard.Subscriber) string { return s.Email }},
				{Title: "Subscribed", Value: func(s dashboard.Subscriber) string { return strconv.FormatBool(s.Subscribed) }},
			},
		})
	case "send-messages":
		return runMessages(ctx, opts, store)
	default:
		return fmt.Errorf("unknown collection %q", opts.collection)
	}
}

// entityView bundles the per-entity render configuration.
type entityView[T dashboard.Entity[T]] struct {
	columns   []dashboard.Column[T]
	accordion func(rec T) (question, answer string)
}

func buildAdapter[T dashboard.Entity[T]](opts runOptions, store *dashboard.Store, slot, path string, seed func() []T) dashboard.Adapter[T] {
	if opts.mode == "rest" {
		return dashboard.NewRESTAdapter[T](opts.baseURL, path, slot, opts.tokens())
	}
	return dashboard.NewBoltAdapter(store, slot, seed)
}

func runEntity[T dashboard.Entity[T]](ctx context.Context, opts runOptions, store *dashboard.Store, slot, path string, seed func() []T, view entityView[T]) error {
	adapter := buildAdapter(opts, store, slot, path, seed)
	collection := dashboard.NewCollection(adapter)
	if err := collection.Reload(ctx); err != nil {
		return err
	}

	lv := dashboard.NewListView(adapter, collection, view.columns)
	if view.accordion != nil {
		lv.WithAccordion(view.accordion)
	}

	switch opts.action {
	case "list":
		if view.accordion != nil {
			printAccordion(lv.Accordion())
			return nil
		}
		printTable(lv.Headers(), lv.Rows())
		return nil
	case "delete":
		if len(opts.args) < 1 {
			return fmt.Errorf("delete needs an id")
		}
		return lv.Delete(ctx, opts.args[0], promptConfirm)
	default:
		return fmt.Errorf("unknown action %q for %s", opts.action, slot)
	}
}

func runMessages(ctx context.Context, opts runOptions, store *dashboard.Store) error {
	const slot, path = "send-messages", "/admin/send-messages"

	var adapter dashboard.Adapter[dashboard.Message]
	var markRead dashboard.ReadToggleFunc
	if opts.mode == "rest" {
		rest := dashboard.NewRESTAdapter[dashboard.Message](opts.baseURL, path, "messages", opts.tokens())
		adapter = rest
		markRead = func(ctx context.Context, id string) error {
			return rest.PatchField(ctx, id, "isRead", true)
		}
	} else {
		bolt := dashboard.NewBoltAdapter[dashboard.Message](store, slot, nil)
		adapter = bolt
		markRead = func(ctx context.Context, id string) error {
			records, err := bolt.List(ctx)
			if err != nil {
				return err
			}
			for _, m := range records {
				if m.ID == id {
					m.IsRead = true
					_, err = bolt.Update(ctx, m)
					return err
				}
			}
			return nil
		}
	}

	collection := dashboard.NewCollection(adapter)
	if err := collection.Reload(ctx); err != nil {
		return err
	}

	lv := dashboard.NewListView(adapter, collection, []dashboard.Column[dashboard.Message]{
		{Title: "ID", Value: func(m dashboard.Message) string { return m.ID }},
		{Title: "From", Value: func(m dashboard.Message) string { return strings.TrimSpace(m.Name + " " + m.LastName) }},
		{Title: "Email", Value: func(m dashboard.Message) string { return m.Email }},
		{Title: "Read", Value: func(m dashboard.Message) string { return strconv.FormatBool(m.IsRead) }},
	}).WithReadToggle(
		func(m dashboard.Message) bool { return m.IsRead },
		markRead,
	)

	switch opts.action {
	case "list":
		printTable(lv.Headers(), lv.Rows())
		return nil
	case "view":
		if len(opts.args) < 1 {
			return fmt.Errorf("view needs an id")
		}
		msg, err := lv.View(ctx, opts.args[0])
		if err != nil {
			return err
		}
		fmt.Printf("From:  %s %s <%s>\n\n%s\n", msg.Name, msg.LastName, msg.Email, msg.Message)
		return nil
	case "delete":
		if len(opts.args) < 1 {
			return fmt.Errorf("delete needs an id")
		}
		return lv.Delete(ctx, opts.args[0], promptConfirm)
	default:
		return fmt.Errorf("unknown action %q for send-messages", opts.action)
	}
}

func promptConfirm(_ context.Context) (bool, error) {
	fmt.Print("Are you sure? [y/N] ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func printTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func printAccordion(items []dashboard.AccordionItem) {
	for _, item := range items {
		fmt.Printf("[%s] %s\n    %s\n", item.ID, item.Question, item.Answer)
	}
}
