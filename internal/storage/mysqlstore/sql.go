package mysqlstore

// One row per collection: the snapshot model is a flat KV blob, the
// relational engine is just the durable home for it.
const createSnapshotsSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
  k          VARCHAR(191) NOT NULL PRIMARY KEY,
  blob_json  LONGTEXT     NOT NULL,
  updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)
`

const upsertSnapshotSQL = `
INSERT INTO snapshots (k, blob_json)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  blob_json  = VALUES(blob_json),
  updated_at = CURRENT_TIMESTAMP
`

const getSnapshotSQL = `SELECT blob_json FROM snapshots WHERE k = ?`
