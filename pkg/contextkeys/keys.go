package contextkeys

// ContextKey is the type for values stored in request contexts.
type ContextKey string

// DBContextKey carries the *gorm.DB handle (pool or transaction) that
// the current request must use.
const DBContextKey ContextKey = "db"
