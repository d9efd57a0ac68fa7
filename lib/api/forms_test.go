// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

// formServer is a minimal in-memory fake of the form endpoints,
// enough for round-trip tests without replaying canned bodies.
type formServer struct {
	nextID int64
	forms  map[int64]Form
}

func newFormServer() *formServer {
	return &formServer{nextID: 1, forms: make(map[int64]Form)}
}

func (fake *formServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /forms", func(writer http.ResponseWriter, request *http.Request) {
		listing := make([]Form, 0, len(fake.forms))
		for id := int64(1); id < fake.nextID; id++ {
			if form, ok := fake.forms[id]; ok {
				listing = append(listing, form)
			}
		}
		json.NewEncoder(writer).Encode(listing)
	})
	mux.HandleFunc("POST /create-form", func(writer http.ResponseWriter, request *http.Request) {
		var draft FormDraft
		json.NewDecoder(request.Body).Decode(&draft)
		form := Form{
			ID:       fake.nextID,
			Email:    draft.Email,
			Region:   draft.Region,
			Place:    draft.Place,
			Topic:    draft.Topic,
			Question: draft.Question,
		}
		fake.nextID++
		fake.forms[form.ID] = form
		writer.WriteHeader(http.StatusCreated)
		json.NewEncoder(writer).Encode(form)
	})
	mux.HandleFunc("/form/", func(writer http.ResponseWriter, request *http.Request) {
		idText := strings.TrimPrefix(request.URL.Path, "/form/")
		id, err := strconv.ParseInt(strings.TrimSuffix(idText, "/"), 10, 64)
		form, ok := fake.forms[id]
		if err != nil || !ok {
			writer.WriteHeader(http.StatusNotFound)
			writer.Write([]byte(`{"error": "Form not found"}`))
			return
		}
		switch request.Method {
		case http.MethodGet:
			json.NewEncoder(writer).Encode(form)
		case http.MethodPut:
			var draft FormDraft
			json.NewDecoder(request.Body).Decode(&draft)
			form.Email = draft.Email
			form.Region = draft.Region
			form.Place = draft.Place
			form.Topic = draft.Topic
			form.Question = draft.Question
			fake.forms[id] = form
			json.NewEncoder(writer).Encode(form)
		case http.MethodDelete:
			delete(fake.forms, id)
			writer.WriteHeader(http.StatusNoContent)
		}
	})
	return mux
}

func TestFormCreateGetRoundTrip(t *testing.T) {
	server := httptest.NewServer(newFormServer().handler())
	defer server.Close()
	client := newTestClient(t, server)
	ctx := context.Background()

	draft := FormDraft{
		Email:    "grower@example.com",
		Region:   "Souss-Massa",
		Place:    "Agadir",
		Topic:    "Biostimulants",
		Question: "Dosage for tomato seedlings?",
	}
	created, err := client.CreateForm(ctx, draft)
	if err != nil {
		t.Fatalf("CreateForm: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created form has no server-assigned ID")
	}

	fetched, err := client.GetForm(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetForm: %v", err)
	}
	if fetched.Email != draft.Email || fetched.Region != draft.Region ||
		fetched.Place != draft.Place || fetched.Topic != draft.Topic ||
		fetched.Question != draft.Question {
		t.Errorf("round trip mismatch: %+v", fetched)
	}
}

func TestFormUpdateReplacesAllFields(t *testing.T) {
	server := httptest.NewServer(newFormServer().handler())
	defer server.Close()
	client := newTestClient(t, server)
	ctx := context.Background()

	created, err := client.CreateForm(ctx, FormDraft{
		Email: "e", Region: "r", Place: "p", Topic: "Biostimulants", Question: "q",
	})
	if err != nil {
		t.Fatalf("CreateForm: %v", err)
	}

	updated, err := client.UpdateForm(ctx, created.ID, FormDraft{
		Email: "e", Region: "r", Place: "p", Topic: "Correcteurs de carence", Question: "q",
	})
	if err != nil {
		t.Fatalf("UpdateForm: %v", err)
	}
	if updated.Topic != "Correcteurs de carence" {
		t.Errorf("topic = %q after update", updated.Topic)
	}
	if updated.ID != created.ID {
		t.Errorf("ID changed on update: %d -> %d", created.ID, updated.ID)
	}
}

func TestFormDeleteRemovesFromListing(t *testing.T) {
	server := httptest.NewServer(newFormServer().handler())
	defer server.Close()
	client := newTestClient(t, server)
	ctx := context.Background()

	first, _ := client.CreateForm(ctx, FormDraft{Email: "e", Region: "r", Place: "p", Topic: "Biostimulants", Question: "one"})
	second, _ := client.CreateForm(ctx, FormDraft{Email: "e", Region: "r", Place: "p", Topic: "Biostimulants", Question: "two"})

	if err := client.DeleteForm(ctx, first.ID); err != nil {
		t.Fatalf("DeleteForm: %v", err)
	}

	listing, err := client.ListForms(ctx)
	if err != nil {
		t.Fatalf("ListForms: %v", err)
	}
	for _, form := range listing {
		if form.ID == first.ID {
			t.Errorf("deleted form %d still in listing", first.ID)
		}
	}
	if len(listing) != 1 || listing[0].ID != second.ID {
		t.Errorf("listing = %+v", listing)
	}

	// The deleted ID is not a recoverable state.
	if _, err := client.GetForm(ctx, first.ID); !IsNotFound(err) {
		t.Errorf("GetForm(deleted) err = %v, want not-found", err)
	}
}

func TestValidTopic(t *testing.T) {
	for _, topic := range Topics {
		if !ValidTopic(topic) {
			t.Errorf("ValidTopic(%q) = false", topic)
		}
	}
	if ValidTopic("Irrigation") {
		t.Error(`ValidTopic("Irrigation") = true, not in the fixed set`)
	}
}
