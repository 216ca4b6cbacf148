package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/spendwell/backend/internal/controllers/v1"
	"github.com/spendwell/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRegister() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Email:    "new.user@example.com",
		Password: "a long enough password",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.AuthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "new.user@example.com", response.Data.User.Email)
	assert.NotEmpty(suite.T(), response.Data.Token)

	// A new user starts out with the default category set
	categories := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "", authHeaders(response.Data.Token))
	test.AssertHTTPStatus(suite.T(), &categories, http.StatusOK)

	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &categories, &list)
	assert.Len(suite.T(), list.Data, 8)
}

func (suite *TestSuiteStandard) TestRegisterInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"No email", v1.RegisterEditable{Password: "a long enough password"}},
		{"Invalid email", v1.RegisterEditable{Email: "not-an-email", Password: "a long enough password"}},
		{"Password too short", v1.RegisterEditable{Email: "shorty@example.com", Password: "2short"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	body := v1.RegisterEditable{
		Email:    "taken@example.com",
		Password: "a long enough password",
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// The same email with different case is still taken
	body.Email = "Taken@example.com"
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.AuthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, "already registered")
}

func (suite *TestSuiteStandard) TestLogin() {
	email := fmt.Sprintf("%s@example.com", uuid.NewString())
	password := "a long enough password"

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Email:    email,
		Password: password,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    email,
		Password: password,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AuthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.NotEmpty(suite.T(), response.Data.Token)
}

// TestLoginInvalid verifies that a wrong password and an unknown email
// are indistinguishable in the response.
func (suite *TestSuiteStandard) TestLoginInvalid() {
	user := registerTestUser(suite.T())

	wrongPassword := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    user.User.Email,
		Password: "not the password",
	})
	test.AssertHTTPStatus(suite.T(), &wrongPassword, http.StatusUnauthorized)

	unknownEmail := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    "nobody@example.com",
		Password: "not the password",
	})
	test.AssertHTTPStatus(suite.T(), &unknownEmail, http.StatusUnauthorized)

	var first, second v1.AuthResponse
	test.DecodeResponse(suite.T(), &wrongPassword, &first)
	test.DecodeResponse(suite.T(), &unknownEmail, &second)

	require.NotNil(suite.T(), first.Error)
	require.NotNil(suite.T(), second.Error)
	assert.Equal(suite.T(), *first.Error, *second.Error)
}

func (suite *TestSuiteStandard) TestLogout() {
	user := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/auth/session", "", authHeaders(user.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The token is invalid from now on
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "", authHeaders(user.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	tests := []struct {
		method string
		url    string
	}{
		{http.MethodGet, "http://example.com/v1/categories"},
		{http.MethodPost, "http://example.com/v1/budgets"},
		{http.MethodGet, "http://example.com/v1/expenses"},
		{http.MethodGet, "http://example.com/v1/reports/2024/3"},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s %s", tt.method, tt.url), func(t *testing.T) {
			// No Authorization header
			r := test.Request(t, tt.method, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			// Garbage token
			r = test.Request(t, tt.method, tt.url, "", authHeaders("not-a-token"))
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}
