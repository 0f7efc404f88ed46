package repository

// rowScanner hem *sql.Row hem *sql.Rows için tek satır tarama noktasıdır.
type rowScanner interface {
	Scan(dest ...interface{}) error
}
