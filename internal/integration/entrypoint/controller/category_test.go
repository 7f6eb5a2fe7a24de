package controller_test

import (
	"net/http"

	"github.com/google/uuid"
)

func (s *apiSuite) TestCategory_CRUD() {
	token := s.register("Ana", "ana@example.com")

	res := s.do(http.MethodPost, "/api/categories", token, `{"name":"Comida","icon":"🍔","color":"#FF0000"}`)
	s.Require().Equal(http.StatusCreated, res.Code, res.Body)
	created := res.JSON(s.T())
	id := created["id"].(string)
	s.Equal("Comida", created["name"])
	s.Equal("🍔", created["icon"])
	s.Equal("#FF0000", created["color"])

	s.createCategory(token, `{"name":"Transporte"}`)

	list := s.do(http.MethodGet, "/api/categories", token, "").List(s.T())
	s.Require().Len(list, 2)
	s.Equal("Comida", list[0]["name"])
	s.Nil(list[1]["icon"])

	got := s.do(http.MethodGet, "/api/categories/"+id, token, "")
	s.Require().Equal(http.StatusOK, got.Code)
	s.Equal(id, got.JSON(s.T())["id"])

	updated := s.do(http.MethodPatch, "/api/categories/"+id, token, `{"name":"Alimentação"}`)
	s.Require().Equal(http.StatusOK, updated.Code, updated.Body)
	body := updated.JSON(s.T())
	s.Equal("Alimentação", body["name"])
	s.Equal("#FF0000", body["color"], "absent fields are kept")

	cleared := s.do(http.MethodPut, "/api/categories/"+id, token, `{"icon":null,"color":""}`)
	s.Require().Equal(http.StatusOK, cleared.Code, cleared.Body)
	s.Nil(cleared.JSON(s.T())["icon"])
	s.Nil(cleared.JSON(s.T())["color"])

	deleted := s.do(http.MethodDelete, "/api/categories/"+id, token, "")
	s.Require().Equal(http.StatusOK, deleted.Code)
	s.Equal("Category deleted successfully", deleted.JSON(s.T())["message"])

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/categories/"+id, token, "").Code)
}

func (s *apiSuite) TestCategory_Validation() {
	token := s.register("Ana", "ana@example.com")

	res := s.do(http.MethodPost, "/api/categories", token, `{"color":"#FF00000"}`)
	s.Require().Equal(http.StatusUnprocessableEntity, res.Code, res.Body)
	errs := fieldErrors(s.T(), res)
	s.Contains(errs, "name")
	s.Contains(errs, "color")

	id := s.createCategory(token, `{"name":"Comida"}`)
	res = s.do(http.MethodPatch, "/api/categories/"+id, token, `{"name":null}`)
	s.Equal(http.StatusUnprocessableEntity, res.Code)
}

func (s *apiSuite) TestCategory_OtherUser() {
	ana := s.register("Ana", "ana@example.com")
	bo := s.register("Bo", "bo@example.com")
	id := s.createCategory(ana, `{"name":"Comida"}`)

	s.Empty(s.do(http.MethodGet, "/api/categories", bo, "").List(s.T()))

	for _, req := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPatch, `{"name":"Mine"}`},
		{http.MethodPatch, `{"name":123}`},
		{http.MethodDelete, ""},
	} {
		res := s.do(req.method, "/api/categories/"+id, bo, req.body)
		s.Equal(http.StatusForbidden, res.Code, req.method+" "+req.body)
		s.Equal("Unauthorized", res.JSON(s.T())["message"])
	}

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/categories/"+id, ana, "").Code)
}

func (s *apiSuite) TestCategory_NotFound() {
	token := s.register("Ana", "ana@example.com")

	for _, path := range []string{"/api/categories/" + uuid.NewString(), "/api/categories/not-a-uuid"} {
		res := s.do(http.MethodGet, path, token, "")
		s.Equal(http.StatusNotFound, res.Code, path)
		s.Equal("Category not found", res.JSON(s.T())["message"])
	}
}
