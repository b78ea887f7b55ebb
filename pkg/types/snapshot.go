package types

// StateSnapshot:
//   version: number
//   state:
//     champion_id: string
//     champion_name: string
//     ability_haste: number
//     summoner_haste: number
//     sound: boolean
//     slots: Slot[6]               // Q, W, E, R, Summ1, Summ2
//
// Slot:
//   slot: string
//   name: string                   // ability or summoner display name
//   level: number                  // abilities only
//   key: string                    // summoners only, default key bind
//   base: number                   // seconds at the current level
//   actual: number                 // base with haste applied
//   running: boolean
//   remaining: number              // seconds
//   total: number                  // seconds, kept at expiry
//   progress: number               // 0..100
//   display: string                // "12.3s" | "1m 23s" while running
