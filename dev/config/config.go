package config

// DEFAULT_CONFIG_YML is written to the config file on first run.
// The two '%s' are replaced with a generated pass phrase for the database, & a
// generated secret used to sign server access tokens.
const DEFAULT_CONFIG_YML = `# Where contacts are stored. 'dir' defaults to ~/kontacts
storage:
  type: sqlite
  dir:
  passPhrase: "%s"

# Use 'host: 0.0.0.0' to accept requests from other machines.
# Requests need a token from 'kontacts token'
server:
  host: 127.0.0.1
  port: 3000
  timeZone: "America/Toronto"
  authSecret: "%s"

# Backups of the contacts database to google cloud storage
google:
  applicationCredentials:
  storage:
    bucket:
    prefix:
    backupSchedule: "0 */6 * * *"
    enableBackup: false

log:
  level: warn
`
