// Package menu implements the interactive token management loop.
//
// Each iteration reloads the token file, shows the main menu, reads one
// selection and runs the matching action:
//
//	1. List tokens
//	2. Add token
//	3. Remove token
//	4. Update token
//	5. Clean expired tokens
//	6. Statistics
//	7. Exit
//
// Actions that change the table are followed by a save. Input is read line
// by line from any io.Reader, which lets tests drive whole sessions.
package menu
