package controller_test

import (
	"net/http"

	"github.com/google/uuid"
)

func (s *apiSuite) TestExpense_CreateWithCategory() {
	token := s.register("Ana", "ana@example.com")
	categoryID := s.createCategory(token, `{"name":"Comida","color":"#FF0000"}`)

	body := s.createExpense(token, `{"amount":50.99,"description":"Almoço","date":"2025-10-29","category_id":"`+categoryID+`"}`)

	s.Equal("50.99", body["amount"])
	s.Equal("Almoço", body["description"])
	s.Equal("2025-10-29", body["date"])
	s.Equal(categoryID, body["category_id"])
	category := body["category"].(map[string]any)
	s.Equal("Comida", category["name"])
}

func (s *apiSuite) TestExpense_CreateMinimal() {
	token := s.register("Ana", "ana@example.com")

	body := s.createExpense(token, `{"amount":"12.345","date":"2025-11-01T18:30:00Z"}`)

	s.Equal("12.35", body["amount"])
	s.Equal("2025-11-01", body["date"])
	s.Nil(body["description"])
	s.Nil(body["category_id"])
	s.Nil(body["category"])
}

func (s *apiSuite) TestExpense_Validation() {
	token := s.register("Ana", "ana@example.com")

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing amount", body: `{"date":"2025-10-29"}`, field: "amount"},
		{name: "negative amount", body: `{"amount":-1,"date":"2025-10-29"}`, field: "amount"},
		{name: "non-numeric amount", body: `{"amount":"abc","date":"2025-10-29"}`, field: "amount"},
		{name: "amount above column range", body: `{"amount":100000000,"date":"2025-10-29"}`, field: "amount"},
		{name: "tiny exponent", body: `{"amount":"1e-2000000000","date":"2025-10-29"}`, field: "amount"},
		{name: "huge exponent", body: `{"amount":"1e2000000000","date":"2025-10-29"}`, field: "amount"},
		{name: "missing date", body: `{"amount":10}`, field: "date"},
		{name: "bad date", body: `{"amount":10,"date":"29/10/2025"}`, field: "date"},
		{name: "unknown category", body: `{"amount":10,"date":"2025-10-29","category_id":"` + uuid.NewString() + `"}`, field: "category_id"},
		{name: "malformed category", body: `{"amount":10,"date":"2025-10-29","category_id":"nope"}`, field: "category_id"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.do(http.MethodPost, "/api/expenses", token, tt.body)
			s.Require().Equal(http.StatusUnprocessableEntity, res.Code, res.Body)
			s.Contains(fieldErrors(s.T(), res), tt.field)
		})
	}

	s.Empty(s.do(http.MethodGet, "/api/expenses", token, "").List(s.T()))
}

func (s *apiSuite) TestExpense_AmountUpperBound() {
	token := s.register("Ana", "ana@example.com")

	body := s.createExpense(token, `{"amount":"99999999.99","date":"2025-10-29"}`)
	s.Equal("99999999.99", body["amount"])

	res := s.do(http.MethodPatch, "/api/expenses/"+body["id"].(string), token, `{"amount":"100000000.00"}`)
	s.Require().Equal(http.StatusUnprocessableEntity, res.Code, res.Body)
	s.Equal([]any{"The amount field must not be greater than 99999999.99."}, fieldErrors(s.T(), res)["amount"])
}

func (s *apiSuite) TestExpense_ForeignCategory() {
	ana := s.register("Ana", "ana@example.com")
	bo := s.register("Bo", "bo@example.com")
	anaCategory := s.createCategory(ana, `{"name":"Comida"}`)

	res := s.do(http.MethodPost, "/api/expenses", bo, `{"amount":-5,"date":"2025-10-29","category_id":"`+anaCategory+`"}`)
	s.Require().Equal(http.StatusForbidden, res.Code, res.Body)
	s.Equal("Invalid category", res.JSON(s.T())["message"])

	own := s.createExpense(bo, `{"amount":5,"date":"2025-10-29"}`)
	res = s.do(http.MethodPatch, "/api/expenses/"+own["id"].(string), bo, `{"category_id":"`+anaCategory+`"}`)
	s.Equal(http.StatusForbidden, res.Code)
}

func (s *apiSuite) TestExpense_ForeignCategoryBeforeTypeErrors() {
	ana := s.register("Ana", "ana@example.com")
	bo := s.register("Bo", "bo@example.com")
	anaCategory := s.createCategory(ana, `{"name":"Comida"}`)
	own := s.createExpense(bo, `{"amount":5,"date":"2025-10-29"}`)["id"].(string)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "create non-numeric amount", method: http.MethodPost, path: "/api/expenses", body: `{"amount":"abc","date":"2025-01-01","category_id":"` + anaCategory + `"}`},
		{name: "create impossible date", method: http.MethodPost, path: "/api/expenses", body: `{"amount":5,"date":"2025-13-45","category_id":"` + anaCategory + `"}`},
		{name: "create numeric date", method: http.MethodPost, path: "/api/expenses", body: `{"amount":5,"date":12345,"category_id":"` + anaCategory + `"}`},
		{name: "update non-numeric amount", method: http.MethodPut, path: "/api/expenses/" + own, body: `{"amount":"abc","category_id":"` + anaCategory + `"}`},
		{name: "patch bad date", method: http.MethodPatch, path: "/api/expenses/" + own, body: `{"date":"nope","category_id":"` + anaCategory + `"}`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.do(tt.method, tt.path, bo, tt.body)
			s.Require().Equal(http.StatusForbidden, res.Code, res.Body)
			s.Equal("Invalid category", res.JSON(s.T())["message"])
		})
	}

	res := s.do(http.MethodPut, "/api/expenses/"+own, bo, `{"amount":"abc"}`)
	s.Equal(http.StatusUnprocessableEntity, res.Code)
	s.Contains(fieldErrors(s.T(), res), "amount")

	s.Equal("5.00", s.do(http.MethodGet, "/api/expenses/"+own, bo, "").JSON(s.T())["amount"])
	s.Len(s.do(http.MethodGet, "/api/expenses", bo, "").List(s.T()), 1)
}

func (s *apiSuite) TestExpense_ListNewestFirst() {
	token := s.register("Ana", "ana@example.com")
	other := s.register("Bo", "bo@example.com")

	s.createExpense(token, `{"amount":1,"date":"2025-10-01"}`)
	s.createExpense(token, `{"amount":2,"date":"2025-11-01"}`)
	s.createExpense(token, `{"amount":3,"date":"2025-11-01"}`)
	s.createExpense(other, `{"amount":99,"date":"2025-11-10"}`)

	list := s.do(http.MethodGet, "/api/expenses", token, "").List(s.T())
	s.Require().Len(list, 3)
	s.Equal("3.00", list[0]["amount"])
	s.Equal("2.00", list[1]["amount"])
	s.Equal("1.00", list[2]["amount"])
}

func (s *apiSuite) TestExpense_UpdatePartial() {
	token := s.register("Ana", "ana@example.com")
	categoryID := s.createCategory(token, `{"name":"Comida"}`)
	created := s.createExpense(token, `{"amount":10,"description":"Café","date":"2025-10-29","category_id":"`+categoryID+`"}`)
	id := created["id"].(string)

	res := s.do(http.MethodPatch, "/api/expenses/"+id, token, `{"amount":20.005}`)
	s.Require().Equal(http.StatusOK, res.Code, res.Body)
	body := res.JSON(s.T())
	s.Equal("20.01", body["amount"])
	s.Equal("Café", body["description"])
	s.Equal(categoryID, body["category_id"])

	res = s.do(http.MethodPut, "/api/expenses/"+id, token, `{"description":"","category_id":null}`)
	s.Require().Equal(http.StatusOK, res.Code, res.Body)
	body = res.JSON(s.T())
	s.Nil(body["description"])
	s.Nil(body["category"])
	s.Equal("2025-10-29", body["date"])

	res = s.do(http.MethodPatch, "/api/expenses/"+id, token, `{"amount":null}`)
	s.Equal(http.StatusUnprocessableEntity, res.Code)

	got := s.do(http.MethodGet, "/api/expenses/"+id, token, "").JSON(s.T())
	s.Equal("20.01", got["amount"])
}

func (s *apiSuite) TestExpense_OtherUser() {
	ana := s.register("Ana", "ana@example.com")
	bo := s.register("Bo", "bo@example.com")
	id := s.createExpense(ana, `{"amount":10,"date":"2025-10-29"}`)["id"].(string)

	for _, req := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPut, `{"amount":1}`},
		{http.MethodPut, `{"amount":"lots"}`},
		{http.MethodDelete, ""},
	} {
		res := s.do(req.method, "/api/expenses/"+id, bo, req.body)
		s.Equal(http.StatusForbidden, res.Code, req.method+" "+req.body)
		s.Equal("Unauthorized", res.JSON(s.T())["message"])
	}

	s.Equal("10.00", s.do(http.MethodGet, "/api/expenses/"+id, ana, "").JSON(s.T())["amount"])
}

func (s *apiSuite) TestExpense_Delete() {
	token := s.register("Ana", "ana@example.com")
	id := s.createExpense(token, `{"amount":10,"date":"2025-10-29"}`)["id"].(string)

	res := s.do(http.MethodDelete, "/api/expenses/"+id, token, "")
	s.Require().Equal(http.StatusOK, res.Code)
	s.Equal("Expense deleted successfully", res.JSON(s.T())["message"])

	for _, path := range []string{"/api/expenses/" + id, "/api/expenses/not-a-uuid"} {
		res = s.do(http.MethodGet, path, token, "")
		s.Equal(http.StatusNotFound, res.Code, path)
		s.Equal("Expense not found", res.JSON(s.T())["message"])
	}
}

func (s *apiSuite) TestExpense_DanglingCategory() {
	token := s.register("Ana", "ana@example.com")
	categoryID := s.createCategory(token, `{"name":"Comida"}`)
	id := s.createExpense(token, `{"amount":10,"date":"2025-10-29","category_id":"`+categoryID+`"}`)["id"].(string)

	s.Require().Equal(http.StatusOK, s.do(http.MethodDelete, "/api/categories/"+categoryID, token, "").Code)

	got := s.do(http.MethodGet, "/api/expenses/"+id, token, "")
	s.Require().Equal(http.StatusOK, got.Code)
	body := got.JSON(s.T())
	s.Equal(categoryID, body["category_id"])
	s.Nil(body["category"])
}
