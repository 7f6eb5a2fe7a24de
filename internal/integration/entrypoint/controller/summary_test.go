package controller_test

import (
	"net/http"
)

func (s *apiSuite) TestSummary_Empty() {
	token := s.register("Ana", "ana@example.com")

	res := s.do(http.MethodGet, "/api/expenses-summary", token, "")

	s.Require().Equal(http.StatusOK, res.Code)
	s.JSONEq(`{"total_expenses":"0.00","recent_expenses":"0.00","expenses_by_category":[]}`, res.Body)
}

func (s *apiSuite) TestSummary() {
	token := s.register("Ana", "ana@example.com")
	other := s.register("Bo", "bo@example.com")
	comida := s.createCategory(token, `{"name":"Comida","icon":"🍔","color":"#FF0000"}`)
	gone := s.createCategory(token, `{"name":"Antiga"}`)

	s.createExpense(token, `{"amount":50.99,"date":"2025-10-29","category_id":"`+comida+`"}`)
	s.createExpense(token, `{"amount":9.01,"date":"2025-10-16","category_id":"`+comida+`"}`)
	s.createExpense(token, `{"amount":100,"date":"2025-10-15","category_id":"`+gone+`"}`)
	s.createExpense(token, `{"amount":5,"date":"2025-11-15"}`)
	s.createExpense(other, `{"amount":1000,"date":"2025-11-15"}`)
	s.Require().Equal(http.StatusOK, s.do(http.MethodDelete, "/api/categories/"+gone, token, "").Code)

	res := s.do(http.MethodGet, "/api/expenses-summary", token, "")
	s.Require().Equal(http.StatusOK, res.Code, res.Body)
	body := res.JSON(s.T())

	s.Equal("165.00", body["total_expenses"])
	// 2025-10-15 is outside the 30 day window ending 2025-11-15
	s.Equal("65.00", body["recent_expenses"])

	rows := body["expenses_by_category"].([]any)
	s.Require().Len(rows, 2)
	totals := map[string]string{}
	for _, r := range rows {
		row := r.(map[string]any)
		name := "<deleted>"
		if category, ok := row["category"].(map[string]any); ok {
			name = category["name"].(string)
		}
		totals[name] = row["total"].(string)
	}
	s.Equal(map[string]string{"Comida": "60.00", "<deleted>": "100.00"}, totals)
}
