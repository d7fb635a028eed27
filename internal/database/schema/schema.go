package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Save Slots Schema

CREATE TABLE IF NOT EXISTS save_slots (
    slot VARCHAR(50) PRIMARY KEY,
    version INTEGER NOT NULL,
    state JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_save_slots_updated_at ON save_slots (updated_at);
`
