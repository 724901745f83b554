package handlers

import "gorm.io/gorm"

// ownedBy scopes a query to rows belonging to the given user. Mutations chain
// it with the id predicate so a zero RowsAffected covers both "absent" and
// "someone else's row" without a separate existence check.
func ownedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
