package controller_test

import (
	"net/http"
)

func (s *apiSuite) TestHealth() {
	res := s.do(http.MethodGet, "/health", "", "")

	s.Require().Equal(http.StatusOK, res.Code)
	body := res.JSON(s.T())
	s.Equal("ok", body["status"])
	s.Equal("connected", body["database"])
	s.NotContains(body, "cache")
}

func (s *apiSuite) TestHealth_WithRedis() {
	s.newEngine(true)

	body := s.do(http.MethodGet, "/health", "", "").JSON(s.T())
	s.Equal("connected", body["cache"])

	s.redis.SetError("ERR server unavailable")
	body = s.do(http.MethodGet, "/health", "", "").JSON(s.T())
	s.Equal("disconnected", body["cache"])
	s.Equal("ok", body["status"])
}
