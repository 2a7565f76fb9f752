package store

// Mission queries
const (
	queryUpsertMission = `
		INSERT INTO missions (id, target_x, target_y, target_z, target_mass, status, delivered, value, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			delivered = EXCLUDED.delivered,
			value = EXCLUDED.value,
			completed_at = EXCLUDED.completed_at`

	queryGetMission = `
		SELECT id, target_x, target_y, target_z, target_mass, status, delivered, value, started_at, completed_at
		FROM missions WHERE id = ?`

	queryListMissions = `
		SELECT id, target_x, target_y, target_z, target_mass, status, delivered, value, started_at, completed_at
		FROM missions ORDER BY started_at DESC LIMIT ?`
)

// Transition queries
const (
	queryInsertTransition = `
		INSERT INTO transitions (mission_id, cycle, from_state, to_state, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	queryListTransitions = `
		SELECT mission_id, cycle, from_state, to_state, reason, created_at
		FROM transitions ORDER BY id DESC LIMIT ?`

	queryListMissionTransitions = `
		SELECT mission_id, cycle, from_state, to_state, reason, created_at
		FROM transitions WHERE mission_id = ? ORDER BY id DESC LIMIT ?`
)

// Fault queries
const (
	queryInsertFault = `
		INSERT INTO faults (mission_id, cycle, state, kind, component, message)
		VALUES (?, ?, ?, ?, ?, ?)`

	queryListFaults = `
		SELECT mission_id, cycle, state, kind, component, message
		FROM faults WHERE mission_id = ? ORDER BY id DESC LIMIT ?`
)

// Telemetry queries
const (
	queryInsertTelemetry = `
		INSERT INTO telemetry (mission_id, cycle, state, charge_percent, temperature, drill_wear, cargo, error, frame)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryLatestTelemetry = `
		SELECT mission_id, cycle, state, charge_percent, temperature, drill_wear, cargo, error
		FROM telemetry ORDER BY id DESC LIMIT 1`

	queryCountTelemetry = `SELECT count(*) FROM telemetry WHERE mission_id = ?`
)

// Checkpoint queries
const (
	queryInsertCheckpoint = `
		INSERT INTO checkpoints (mission_id, state, data)
		VALUES (?, ?, ?)`

	queryLatestCheckpoint = `SELECT data FROM checkpoints ORDER BY id DESC LIMIT 1`
)
