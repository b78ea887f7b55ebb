package types

// Client -> Server (websocket /ws?code=XXXXXX)
// SelectChampion:
//   champion_id: string            // Data Dragon id, e.g. "Ahri"
//
// SetSummoner:
//   slot: "Summ1" | "Summ2"
//   spell: string                  // "Flash", "Ignite", ...
//
// AdjustLevel:
//   slot: "Q" | "W" | "E" | "R"
//   delta: number                  // clamped to 1..5 (1..3 for R)
//
// AddHaste / SetHaste:
//   haste: "ability" | "summoner"
//   amount: number                 // AddHaste defaults to 10
//
// ResetHaste:
//   haste?: "ability" | "summoner" // omitted resets both
//
// ToggleCooldown / StartCooldown / StopCooldown:
//   slot: "Q" | "W" | "E" | "R" | "Summ1" | "Summ2"
//
// ReduceCooldown:
//   slot: string
//   amount?: number                // seconds, defaults to 10
//
// ResetAll: {}
//
// SetSound:
//   enabled: boolean

// Server -> Client
// StateSnapshot: see snapshot.go
//
// CooldownExpired (follows the snapshot that expired the slots):
//   version: number
//   slots: string[]
//   sound: boolean                 // play the alert
//
// Error (sent to the requesting client only):
//   version?: number
//   error: string
