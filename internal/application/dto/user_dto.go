package dto

// AddEmployeeRequest body para POST /api/users/employees (solo gerentes).
// El empleado se crea en la empresa del gerente con rol employee.
type AddEmployeeRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}
