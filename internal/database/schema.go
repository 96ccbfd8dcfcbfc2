package database

// schemaStatements is executed in order at startup. Constraint names are
// load-bearing: errors.go maps them back to API-facing conflict messages.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(254) NOT NULL,
		username VARCHAR(150) NOT NULL,
		password VARCHAR(128) NOT NULL,
		first_name VARCHAR(150) NOT NULL DEFAULT '',
		last_name VARCHAR(150) NOT NULL DEFAULT '',
		is_staff BOOLEAN NOT NULL DEFAULT FALSE,
		is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT unique_user_email UNIQUE (email)
	)`,

	`CREATE TABLE IF NOT EXISTS airports (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		city VARCHAR(55) NOT NULL,
		image TEXT,
		open_year SMALLINT NOT NULL CHECK (open_year > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT unique_airport_name UNIQUE (name)
	)`,

	`CREATE TABLE IF NOT EXISTS routes (
		id UUID PRIMARY KEY,
		source_id UUID NOT NULL CONSTRAINT fk_route_source REFERENCES airports(id) ON DELETE CASCADE,
		destination_id UUID NOT NULL CONSTRAINT fk_route_destination REFERENCES airports(id) ON DELETE CASCADE,
		distance INTEGER NOT NULL CHECK (distance > 0),
		CONSTRAINT unique_route UNIQUE (source_id, destination_id),
		CONSTRAINT source_not_equal_destination CHECK (source_id <> destination_id)
	)`,

	`CREATE TABLE IF NOT EXISTS manufacturers (
		id UUID PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		country VARCHAR(50) NOT NULL,
		founded_year SMALLINT,
		website TEXT,
		logo TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT unique_manufacturer_name UNIQUE (name)
	)`,

	`CREATE TABLE IF NOT EXISTS airplane_types (
		id UUID PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		code VARCHAR(3) NOT NULL,
		purpose VARCHAR(100) NOT NULL,
		CONSTRAINT unique_airplane_type_name UNIQUE (name),
		CONSTRAINT unique_airplane_type_code UNIQUE (code)
	)`,

	`CREATE TABLE IF NOT EXISTS airplanes (
		id UUID PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		type_id UUID NOT NULL CONSTRAINT fk_airplane_type REFERENCES airplane_types(id) ON DELETE RESTRICT,
		manufacturer_id UUID NOT NULL CONSTRAINT fk_airplane_manufacturer REFERENCES manufacturers(id) ON DELETE RESTRICT,
		rows SMALLINT CHECK (rows > 0),
		seats_in_row SMALLINT CHECK (seats_in_row > 0),
		pilots_capacity SMALLINT NOT NULL CHECK (pilots_capacity BETWEEN 1 AND 5),
		personal_capacity SMALLINT NOT NULL DEFAULT 0 CHECK (personal_capacity >= 0),
		year_of_manufacture SMALLINT NOT NULL CHECK (year_of_manufacture > 0),
		fuel_capacity_l INTEGER NOT NULL DEFAULT 0,
		cargo_capacity_kg INTEGER NOT NULL DEFAULT 0,
		max_speed_kmh INTEGER NOT NULL DEFAULT 0,
		max_distance_km INTEGER NOT NULL DEFAULT 0,
		image TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS crews (
		id UUID PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		crew_type VARCHAR(20) NOT NULL,
		position VARCHAR(30) NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_crews_name ON crews (first_name, last_name)`,

	`CREATE TABLE IF NOT EXISTS flights (
		id UUID PRIMARY KEY,
		route_id UUID NOT NULL CONSTRAINT fk_flight_route REFERENCES routes(id) ON DELETE CASCADE,
		airplane_id UUID NOT NULL CONSTRAINT fk_flight_airplane REFERENCES airplanes(id) ON DELETE RESTRICT,
		departure_time TIMESTAMPTZ NOT NULL,
		arrival_time TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS flight_crew (
		flight_id UUID NOT NULL CONSTRAINT fk_flight_crew_flight REFERENCES flights(id) ON DELETE CASCADE,
		crew_id UUID NOT NULL CONSTRAINT fk_flight_crew_member REFERENCES crews(id) ON DELETE CASCADE,
		PRIMARY KEY (flight_id, crew_id)
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL CONSTRAINT fk_order_user REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS tickets (
		id UUID PRIMARY KEY,
		row SMALLINT NOT NULL CHECK (row >= 1),
		seat SMALLINT NOT NULL CHECK (seat >= 1),
		order_id UUID NOT NULL CONSTRAINT fk_ticket_order REFERENCES orders(id) ON DELETE CASCADE,
		flight_id UUID NOT NULL CONSTRAINT fk_ticket_flight REFERENCES flights(id) ON DELETE RESTRICT,
		booked_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT unique_flight_ticket UNIQUE (flight_id, row, seat)
	)`,
}
