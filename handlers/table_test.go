package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"restaurant-manager-api/config"
	"restaurant-manager-api/models"
)

func TestGetTablesWithoutAuth(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/table/getTables", nil, "")
	env := decodeEnvelope(t, w)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", w.Code)
	}
	if len(env.Errors) == 0 {
		t.Error("errors should name the rejection reason")
	}
}

func TestAddTableAndDuplicateName(t *testing.T) {
	r := setupRouter(t)
	admin := createUser(t, "admin1", "a@x.com", "password1", models.RoleAdmin)
	token := tokenFor(t, admin)

	body := map[string]any{
		"tableName":       "T1",
		"seatingCapacity": 4,
		"available":       true,
		"userId":          admin.ID,
	}
	w := doRequest(t, r, http.MethodPost, "/api/v1/table/addTable", body, token)
	env := decodeEnvelope(t, w)
	if w.Code != http.StatusCreated {
		t.Fatalf("first add: got %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	var table models.Table
	if err := json.Unmarshal(env.Data, &table); err != nil {
		t.Fatalf("decode table: %v", err)
	}
	if table.ID == "" || table.TableName != "T1" || table.SeatingCapacity != 4 {
		t.Errorf("table = %+v, want the persisted entity back", table)
	}

	w = doRequest(t, r, http.MethodPost, "/api/v1/table/addTable", body, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate add: got %d, want 409 (body: %s)", w.Code, w.Body.String())
	}
}

func TestAddTableZeroCapacityRejected(t *testing.T) {
	r := setupRouter(t)
	admin := createUser(t, "admin1", "a@x.com", "password1", models.RoleAdmin)

	w := doRequest(t, r, http.MethodPost, "/api/v1/table/addTable", map[string]any{
		"tableName":       "T1",
		"seatingCapacity": 0,
		"userId":          admin.ID,
	}, tokenFor(t, admin))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400 (body: %s)", w.Code, w.Body.String())
	}
}

func TestUpdateTable(t *testing.T) {
	r := setupRouter(t)
	admin := createUser(t, "admin1", "a@x.com", "password1", models.RoleAdmin)
	token := tokenFor(t, admin)

	table := models.Table{TableName: "T1", SeatingCapacity: 4, Available: true, UserID: admin.ID}
	if err := config.DB.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}

	w := doRequest(t, r, http.MethodPut, "/api/v1/table/updateTable", map[string]any{
		"id":              table.ID,
		"seatingCapacity": 6,
		"available":       false,
		"userId":          admin.ID,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	var stored models.Table
	if err := config.DB.First(&stored, "id = ?", table.ID).Error; err != nil {
		t.Fatalf("reload table: %v", err)
	}
	if stored.SeatingCapacity != 6 || stored.Available {
		t.Errorf("stored = %+v, want capacity 6 and available false", stored)
	}
	if stored.TableName != "T1" {
		t.Errorf("tableName = %q, want untouched fields preserved", stored.TableName)
	}
}

func TestUpdateTableUnknownID(t *testing.T) {
	r := setupRouter(t)
	admin := createUser(t, "admin1", "a@x.com", "password1", models.RoleAdmin)

	w := doRequest(t, r, http.MethodPut, "/api/v1/table/updateTable", map[string]any{
		"id":     "no-such-table",
		"userId": admin.ID,
	}, tokenFor(t, admin))
	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404 (body: %s)", w.Code, w.Body.String())
	}
}

func TestDeleteTable(t *testing.T) {
	r := setupRouter(t)
	admin := createUser(t, "admin1", "a@x.com", "password1", models.RoleAdmin)
	token := tokenFor(t, admin)

	table := models.Table{TableName: "T1", SeatingCapacity: 4, Available: true, UserID: admin.ID}
	if err := config.DB.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}

	w := doRequest(t, r, http.MethodDelete, "/api/v1/table/deleteTable",
		map[string]any{"id": table.ID}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	var count int64
	if err := config.DB.Model(&models.Table{}).Count(&count).Error; err != nil {
		t.Fatalf("count tables: %v", err)
	}
	if count != 0 {
		t.Errorf("table count = %d, want 0 after delete", count)
	}

	w = doRequest(t, r, http.MethodDelete, "/api/v1/table/deleteTable",
		map[string]any{"id": table.ID}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: got %d, want 404", w.Code)
	}
}
