package staff

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/DhavalSuthar-24/lelo/internal/dbtest"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestListOrderedByName(t *testing.T) {
	s := NewService(NewStaffRepository(dbtest.Open(t, &StaffMember{})))
	ctx := context.Background()

	for _, n := range []string{"Nika", "Archil", "Levan"} {
		_, err := s.Create(ctx, CreateStaffRequest{Name: n, Position: "Coach"})
		require.NoError(t, err)
	}

	var names []string
	for _, m := range s.List(ctx) {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Archil", "Levan", "Nika"}, names)
}

func TestEmailIsOptional(t *testing.T) {
	s := NewService(NewStaffRepository(dbtest.Open(t, &StaffMember{})))
	ctx := context.Background()

	m, err := s.Create(ctx, CreateStaffRequest{Name: "Giorgi", Email: strPtr(" Coach@Lelo.ge ")})
	require.NoError(t, err)
	require.NotNil(t, m.Email)
	assert.Equal(t, "coach@lelo.ge", *m.Email)

	updated, err := s.Update(ctx, m.ID, UpdateStaffRequest{Email: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.Email)
	assert.Equal(t, "Giorgi", updated.Name)
}

func TestDeleteMissing(t *testing.T) {
	s := NewService(NewStaffRepository(dbtest.Open(t, &StaffMember{})))
	assert.ErrorIs(t, s.Delete(context.Background(), 3), ErrNotFound)
}

func TestCreateStaffValidatesEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validator.Setup()

	sc := NewStaffController(NewService(NewStaffRepository(dbtest.Open(t, &StaffMember{}))))
	r := gin.New()
	r.POST("/staff", sc.CreateStaff)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"bad email", `{"name":"A","email":"not-an-email"}`, http.StatusBadRequest},
		{"no email", `{"name":"A"}`, http.StatusCreated},
		{"empty email", `{"name":"C","email":""}`, http.StatusCreated},
		{"good email", `{"name":"B","email":"b@lelo.ge"}`, http.StatusCreated},
		{"no name", `{"position":"Physio"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/staff", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestUpdateStaffClearsEmailOverHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validator.Setup()

	svc := NewService(NewStaffRepository(dbtest.Open(t, &StaffMember{})))
	m, err := svc.Create(context.Background(), CreateStaffRequest{Name: "Giorgi", Email: strPtr("coach@lelo.ge")})
	require.NoError(t, err)

	sc := NewStaffController(svc)
	r := gin.New()
	r.PUT("/staff/:staff_id", sc.UpdateStaff)

	put := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/staff/"+strconv.FormatUint(uint64(m.ID), 10), strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := put(`{"email":"still-not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = put(`{"email":""}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Data StaffMember `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body.Data.Email)
	assert.Equal(t, "Giorgi", body.Data.Name)

	stored, err := svc.Get(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Email)
}

func TestCreateAppearsOnce(t *testing.T) {
	s := NewService(NewStaffRepository(dbtest.Open(t, &StaffMember{})))
	ctx := context.Background()

	_, err := s.Create(ctx, CreateStaffRequest{Name: "Levan", Position: "Physio"})
	require.NoError(t, err)
	created, err := s.Create(ctx, CreateStaffRequest{Name: "Irakli", Position: "Analyst"})
	require.NoError(t, err)

	count := 0
	for _, m := range s.List(ctx) {
		if m.ID == created.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
