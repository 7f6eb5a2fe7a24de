package model

// All returns the models migrated at startup, in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&ExpenseModel{},
		&RevokedTokenModel{},
	}
}
