// Package pgstore is a PostgreSQL-backed credential store on top of a pgx
// connection pool. Credentials live in the totp_credentials table created
// by the embedded goose migration; run Migrate once at startup to apply it.
package pgstore
