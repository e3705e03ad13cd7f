package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates and updates the schema. Every statement is
// idempotent so this is safe to run on each startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []struct {
		name string
		fn   func(*sql.DB) error
	}{
		{"core tables", createCoreTables},
		{"finance tables", createFinanceTables},
		{"change notifications", createNotifyTriggers},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			log.Printf("Migration step %q failed: %v", step.name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createCoreTables(db *sql.DB) error {
	query := `
		CREATE EXTENSION IF NOT EXISTS pgcrypto;

		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

		CREATE TABLE IF NOT EXISTS preferences (
			user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			money_visible BOOLEAN NOT NULL DEFAULT true,
			theme VARCHAR(20) NOT NULL DEFAULT 'dark',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`
	_, err := db.Exec(query)
	return err
}

func createFinanceTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS policies (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(20) NOT NULL,
			provider VARCHAR(255) NOT NULL,
			policy_number VARCHAR(100) NOT NULL,
			start_date DATE NOT NULL,
			expiry_date DATE NOT NULL,
			premium NUMERIC(14,2) NOT NULL DEFAULT 0,
			premium_frequency VARCHAR(10) NOT NULL,
			coverage NUMERIC(14,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_policies_user ON policies(user_id);

		CREATE TABLE IF NOT EXISTS investments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(20) NOT NULL,
			provider VARCHAR(255) NOT NULL,
			account_number VARCHAR(100) NOT NULL DEFAULT '',
			start_date DATE NOT NULL,
			current_value NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_contributions NUMERIC(14,2) NOT NULL DEFAULT 0,
			monthly_contribution NUMERIC(14,2),
			return_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_investments_user ON investments(user_id);

		CREATE TABLE IF NOT EXISTS alerts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			type VARCHAR(20) NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			due_date DATE,
			priority VARCHAR(10) NOT NULL,
			related_item_id UUID,
			related_item_type VARCHAR(10),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_alerts_user ON alerts(user_id);

		CREATE TABLE IF NOT EXISTS documents (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			content_type VARCHAR(100) NOT NULL DEFAULT '',
			category VARCHAR(20) NOT NULL,
			file_data TEXT NOT NULL DEFAULT '',
			storage_key VARCHAR(512) NOT NULL DEFAULT '',
			size_bytes BIGINT NOT NULL DEFAULT 0,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			expires_at DATE
		);
		CREATE INDEX IF NOT EXISTS idx_documents_user ON documents(user_id);
	`
	_, err := db.Exec(query)
	return err
}

// createNotifyTriggers installs the trigger that broadcasts row changes on
// the record_changes channel. The watcher in watch.go listens on it.
func createNotifyTriggers(db *sql.DB) error {
	query := `
		CREATE OR REPLACE FUNCTION notify_record_change() RETURNS trigger AS $$
		DECLARE
			affected_user UUID;
		BEGIN
			IF TG_OP = 'DELETE' THEN
				affected_user := OLD.user_id;
			ELSE
				affected_user := NEW.user_id;
			END IF;
			PERFORM pg_notify('record_changes', json_build_object(
				'table', TG_TABLE_NAME,
				'user_id', affected_user,
				'op', TG_OP
			)::text);
			RETURN NULL;
		END;
		$$ LANGUAGE plpgsql;

		DO $$
		DECLARE
			t TEXT;
		BEGIN
			FOREACH t IN ARRAY ARRAY['policies', 'investments', 'alerts', 'documents'] LOOP
				IF NOT EXISTS (
					SELECT 1 FROM pg_trigger
					WHERE tgname = t || '_notify_change'
				) THEN
					EXECUTE format(
						'CREATE TRIGGER %I AFTER INSERT OR UPDATE OR DELETE ON %I FOR EACH ROW EXECUTE FUNCTION notify_record_change()',
						t || '_notify_change', t
					);
				END IF;
			END LOOP;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to install notify triggers: %v", err)
	}
	return err
}
