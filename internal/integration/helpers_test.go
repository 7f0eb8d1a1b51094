package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"cinebook/api"
	"cinebook/internal/domain"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"reference": {},
}

func prepareRequest(method, path string, body io.Reader, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func createTestUser(t testing.TB, app *TestApp, username, email, plaintext string) int {
	t.Helper()

	var user domain.User
	require.NoError(t, user.Password.Set(plaintext))

	var id int
	err := app.DB.QueryRow(
		context.Background(),
		"INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		username, email, user.Password.Hash,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func loginAs(t testing.TB, app *TestApp, username, password string) []*http.Cookie {
	t.Helper()

	body, err := json.Marshal(api.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode, "login failed during test setup")

	return res.Cookies()
}

func createTestMovie(t testing.TB, app *TestApp, title string) int {
	t.Helper()

	var id int
	err := app.DB.QueryRow(
		context.Background(),
		"INSERT INTO movies (title, description, duration, genre, rating) VALUES ($1, '', 120, 'Drama', 'PG-13') RETURNING id",
		title,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func createTestShow(t testing.TB, app *TestApp, movieID, totalSeats int, price string) int {
	t.Helper()

	var id int
	err := app.DB.QueryRow(
		context.Background(),
		"INSERT INTO shows (movie_id, show_time, screen_number, total_seats, price) VALUES ($1, $2, 1, $3, $4) RETURNING id",
		movieID, time.Now().Add(24*time.Hour), totalSeats, price,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// fetchSeatMap hits the seat map endpoint, which provisions the grid on
// first access, and returns the decoded response.
func fetchSeatMap(t testing.TB, app *TestApp, showID int, cookies []*http.Cookie) api.SeatMapResponse {
	t.Helper()

	req, err := prepareRequest(http.MethodGet, fmt.Sprintf("/shows/%d/seats", showID), nil, cookies)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode, "failed to fetch seat map")

	var seatMap api.SeatMapResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&seatMap))

	return seatMap
}

// seatIDsByNumber maps seat numbers like "A1" to seat ids for a show.
func seatIDsByNumber(seatMap api.SeatMapResponse) map[string]int {
	ids := make(map[string]int)

	for _, row := range seatMap.SeatRows {
		for _, seat := range row.Seats {
			ids[seat.SeatNumber] = seat.Id
		}
	}

	return ids
}

func mustDecimal(t testing.TB, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}

func countConfirmedSeatClaims(t testing.TB, app *TestApp, showID int) int {
	t.Helper()

	var count int
	err := app.DB.QueryRow(
		context.Background(),
		`SELECT count(*) FROM seats s
		 JOIN bookings b ON b.id = s.booking_id
		 WHERE s.show_id = $1 AND b.status = 'confirmed'`,
		showID,
	).Scan(&count)
	require.NoError(t, err)

	return count
}

func countBookingsForShow(t testing.TB, app *TestApp, showID int) int {
	t.Helper()

	var count int
	err := app.DB.QueryRow(
		context.Background(),
		"SELECT count(*) FROM bookings WHERE show_id = $1 AND status = 'confirmed'",
		showID,
	).Scan(&count)
	require.NoError(t, err)

	return count
}
