package controllers

// Test-only bridge so the external controllers_test package can reach the
// unexported auth helpers.
var (
	HashPassword = hashPassword
	GenerateJWT  = generateJWT
)
