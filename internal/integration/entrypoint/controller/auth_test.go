package controller_test

import (
	"net/http"
	"strings"
)

func (s *apiSuite) TestRegister() {
	res := s.do(http.MethodPost, "/api/register", "",
		`{"name":"Ana","email":" Ana@Example.com ","password":"password123","password_confirmation":"password123"}`)

	s.Require().Equal(http.StatusCreated, res.Code, res.Body)
	body := res.JSON(s.T())
	s.Equal("Bearer", body["token_type"])
	s.NotEmpty(body["access_token"])

	user := body["user"].(map[string]any)
	s.Equal("Ana", user["name"])
	s.Equal("ana@example.com", user["email"])
	s.NotContains(res.Body, "password")
}

func (s *apiSuite) TestRegister_Validation() {
	s.register("Ana", "ana@example.com")

	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{name: "empty body", body: `{}`, fields: []string{"name", "email", "password"}},
		{name: "taken email", body: `{"name":"Ana","email":"ANA@example.com","password":"password123","password_confirmation":"password123"}`, fields: []string{"email"}},
		{name: "bad email and short password", body: `{"name":"Bo","email":"nope","password":"short","password_confirmation":"short"}`, fields: []string{"email", "password"}},
		{name: "confirmation mismatch", body: `{"name":"Bo","email":"bo@example.com","password":"password123","password_confirmation":"password124"}`, fields: []string{"password"}},
		{name: "non-string name", body: `{"name":42,"email":"bo@example.com","password":"password123","password_confirmation":"password123"}`, fields: []string{"name"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.do(http.MethodPost, "/api/register", "", tt.body)
			s.Require().Equal(http.StatusUnprocessableEntity, res.Code, res.Body)
			errs := fieldErrors(s.T(), res)
			for _, field := range tt.fields {
				s.Contains(errs, field)
			}
		})
	}
}

func (s *apiSuite) TestRegister_PasswordByteLimit() {
	long := strings.Repeat("p", 80)
	res := s.do(http.MethodPost, "/api/register", "",
		`{"name":"Ana","email":"ana@example.com","password":"`+long+`","password_confirmation":"`+long+`"}`)

	s.Require().Equal(http.StatusUnprocessableEntity, res.Code, res.Body)
	s.Equal([]any{"The password field must not be greater than 72 characters."}, fieldErrors(s.T(), res)["password"])

	exact := strings.Repeat("p", 72)
	res = s.do(http.MethodPost, "/api/register", "",
		`{"name":"Ana","email":"ana@example.com","password":"`+exact+`","password_confirmation":"`+exact+`"}`)
	s.Equal(http.StatusCreated, res.Code, res.Body)
}

func (s *apiSuite) TestRegister_MalformedBody() {
	res := s.do(http.MethodPost, "/api/register", "", `{"name":`)

	s.Equal(http.StatusBadRequest, res.Code)
	s.Equal("Invalid request body", res.JSON(s.T())["message"])
}

func (s *apiSuite) TestRegister_OversizedBody() {
	res := s.do(http.MethodPost, "/api/register", "",
		`{"name":"`+strings.Repeat("a", 2<<20)+`","email":"ana@example.com","password":"password123","password_confirmation":"password123"}`)

	s.Equal(http.StatusBadRequest, res.Code)
	s.Equal("Request body too large", res.JSON(s.T())["message"])
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/login", "", `{"email":"ana@example.com","password":"password123"}`).Code)
}

func (s *apiSuite) TestLogin() {
	s.register("Ana", "ana@example.com")

	res := s.do(http.MethodPost, "/api/login", "", `{"email":"ana@example.com","password":"password123"}`)
	s.Require().Equal(http.StatusOK, res.Code, res.Body)
	token := res.JSON(s.T())["access_token"].(string)

	me := s.do(http.MethodGet, "/api/me", token, "")
	s.Require().Equal(http.StatusOK, me.Code)
	s.Equal("ana@example.com", me.JSON(s.T())["email"])
}

func (s *apiSuite) TestLogin_InvalidCredentials() {
	s.register("Ana", "ana@example.com")

	for _, body := range []string{
		`{"email":"ana@example.com","password":"wrong-password"}`,
		`{"email":"nobody@example.com","password":"password123"}`,
	} {
		res := s.do(http.MethodPost, "/api/login", "", body)
		s.Equal(http.StatusUnauthorized, res.Code)
		s.Equal("Invalid credentials", res.JSON(s.T())["message"])
	}

	res := s.do(http.MethodPost, "/api/login", "", `{}`)
	s.Equal(http.StatusUnprocessableEntity, res.Code)
}

func (s *apiSuite) TestMe_RequiresToken() {
	for _, path := range []string{"/api/me", "/api/user", "/api/categories", "/api/expenses", "/api/expenses-summary"} {
		res := s.do(http.MethodGet, path, "", "")
		s.Equal(http.StatusUnauthorized, res.Code, path)
		s.Equal("Unauthenticated.", res.JSON(s.T())["message"], path)
	}

	res := s.do(http.MethodGet, "/api/me", "not-a-token", "")
	s.Equal(http.StatusUnauthorized, res.Code)
}

func (s *apiSuite) TestUserAlias() {
	token := s.register("Ana", "ana@example.com")

	me := s.do(http.MethodGet, "/api/me", token, "")
	user := s.do(http.MethodGet, "/api/user", token, "")

	s.Equal(http.StatusOK, user.Code)
	s.JSONEq(me.Body, user.Body)
}

func (s *apiSuite) TestLogout_RevokesOnlyThatToken() {
	first := s.register("Ana", "ana@example.com")
	login := s.do(http.MethodPost, "/api/login", "", `{"email":"ana@example.com","password":"password123"}`)
	second := login.JSON(s.T())["access_token"].(string)

	res := s.do(http.MethodPost, "/api/logout", first, "")
	s.Require().Equal(http.StatusOK, res.Code, res.Body)
	s.Equal("Logged out successfully", res.JSON(s.T())["message"])

	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/me", first, "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/me", second, "").Code)
}

func (s *apiSuite) TestLogout_WithRedis() {
	s.newEngine(true)
	token := s.register("Ana", "ana@example.com")

	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/logout", token, "").Code)

	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/me", token, "").Code)
	s.Len(s.redis.Keys(), 1)
}
