// meta/meta.go
package meta

// BOARD_SIZE is the number of rows and columns of the board.
const BOARD_SIZE = 9

// WALLS is the conventional wall stock of each player.
const WALLS = 10

// DEPTH defines the default minimax search depth in plies.
const DEPTH = 2

// GO_ROUTINES defines the number of goroutines used at the top ply.
const GO_ROUTINES = 1

// MAX_TURNS caps local games so that two walling agents cannot loop forever.
const MAX_TURNS = 200

// SERVER_URL is the default match server.
const SERVER_URL = "https://pax.ulaval.ca/quoridor/api/h25"
