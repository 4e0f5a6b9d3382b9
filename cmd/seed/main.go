// seed genera un script SQL con datos de demostración: usuarios, empleados,
// asistencia, permisos, anuncios y evaluaciones.
//
// Uso: go run ./cmd/seed [-n 10] [-out seed_demo.sql]
// Todos los usuarios generados tienen la contraseña "demo1234".
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

const demoPassword = "demo1234"

var departments = []string{"Ingeniería", "Ventas", "Finanzas", "Recursos Humanos", "Operaciones"}

var leaveTypes = []string{
	entity.LeaveAnnual, entity.LeaveSick, entity.LeavePersonal, entity.LeaveUnpaid,
}

func main() {
	n := flag.Int("n", 10, "cantidad de empleados a generar")
	out := flag.String("out", "seed_demo.sql", "archivo SQL de salida")
	flag.Parse()

	gofakeit.Seed(0)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bcrypt: %v\n", err)
		os.Exit(1)
	}

	var b strings.Builder
	b.WriteString("-- Datos de demostración. Contraseña de todos los usuarios: " + demoPassword + "\n")
	b.WriteString("BEGIN;\n\n")

	writeUser(&b, string(hash), "admin@demo.local", "Admin Demo", entity.RoleAdmin, "")
	hrEmployeeID := writeEmployee(&b, "HR Manager Demo", "hr@demo.local", "Recursos Humanos", "HR Manager")
	writeUser(&b, string(hash), "hr@demo.local", "HR Manager Demo", entity.RoleHRManager, hrEmployeeID)

	for i := 0; i < *n; i++ {
		name := gofakeit.Name()
		email := strings.ToLower(gofakeit.Username()) + "@demo.local"
		dept := departments[gofakeit.Number(0, len(departments)-1)]
		empID := writeEmployee(&b, name, email, dept, gofakeit.JobTitle())
		writeUser(&b, string(hash), email, name, entity.RoleEmployee, empID)
		writeAttendance(&b, empID, name)
		writeLeave(&b, empID, name, dept)
		writeReview(&b, empID)
	}

	for i := 0; i < 3; i++ {
		writeAnnouncement(&b)
	}

	b.WriteString("\nCOMMIT;\n")

	if err := os.WriteFile(*out, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escribir %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s (%d empleados)\n", *out, *n+1)
}

func writeUser(b *strings.Builder, hash, email, name, role, employeeID string) {
	empVal := "NULL"
	if employeeID != "" {
		empVal = q(employeeID)
	}
	fmt.Fprintf(b,
		"INSERT INTO users (id, email, password_hash, name, role, status, verified, employee_id, created_at, updated_at)\n"+
			"VALUES (%s, %s, %s, %s, %s, 'active', TRUE, %s, NOW(), NOW());\n",
		q(uuid.New().String()), q(email), q(hash), q(name), q(role), empVal)
}

func writeEmployee(b *strings.Builder, name, email, dept, designation string) string {
	id := uuid.New().String()
	joined := gofakeit.DateRange(
		time.Now().AddDate(-5, 0, 0), time.Now().AddDate(0, -1, 0),
	).Format("2006-01-02")
	salary := gofakeit.Number(1200, 9500)
	fmt.Fprintf(b,
		"INSERT INTO employees (id, name, email, department, designation, joining_date, salary, phone, created_at, updated_at)\n"+
			"VALUES (%s, %s, %s, %s, %s, %s, %d.00, %s, NOW(), NOW());\n",
		q(id), q(name), q(email), q(dept), q(designation), q(joined), salary,
		q(gofakeit.Phone()))
	return id
}

func writeAttendance(b *strings.Builder, empID, name string) {
	// Última semana laboral, con retraso ocasional.
	for d := 1; d <= 5; d++ {
		day := time.Now().AddDate(0, 0, -d)
		late := gofakeit.Number(0, 9) == 0
		checkIn := time.Date(day.Year(), day.Month(), day.Day(), 8, gofakeit.Number(45, 59), 0, 0, time.UTC)
		if late {
			checkIn = checkIn.Add(45 * time.Minute)
		}
		checkOut := time.Date(day.Year(), day.Month(), day.Day(), 17, gofakeit.Number(0, 30), 0, 0, time.UTC)
		fmt.Fprintf(b,
			"INSERT INTO attendance_records (id, employee_id, employee_name, position, date, check_in, check_out, is_late, is_absent, created_at)\n"+
				"VALUES (%s, %s, %s, '', %s, %s, %s, %t, FALSE, NOW());\n",
			q(uuid.New().String()), q(empID), q(name), q(day.Format("2006-01-02")),
			q(checkIn.Format(time.RFC3339)), q(checkOut.Format(time.RFC3339)), late)
	}
}

func writeLeave(b *strings.Builder, empID, name, dept string) {
	start := time.Now().AddDate(0, 0, gofakeit.Number(7, 30))
	days := gofakeit.Number(1, 5)
	end := start.AddDate(0, 0, days-1)
	fmt.Fprintf(b,
		"INSERT INTO leave_requests (id, employee_id, employee_name, leave_type, department, start_date, end_date, reason, days, status, created_at)\n"+
			"VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %d, 'Pending', NOW());\n",
		q(uuid.New().String()), q(empID), q(name),
		q(leaveTypes[gofakeit.Number(0, len(leaveTypes)-1)]), q(dept),
		q(start.Format("2006-01-02")), q(end.Format("2006-01-02")),
		q(gofakeit.Sentence(6)), days)
}

func writeReview(b *strings.Builder, empID string) {
	fmt.Fprintf(b,
		"INSERT INTO performance_reviews (id, employee_id, review_date, rating, comments, created_at)\n"+
			"VALUES (%s, %s, %s, %d, %s, NOW());\n",
		q(uuid.New().String()), q(empID),
		q(time.Now().AddDate(0, -gofakeit.Number(1, 11), 0).Format("2006-01-02")),
		gofakeit.Number(1, 5), q(gofakeit.Sentence(8)))
}

func writeAnnouncement(b *strings.Builder) {
	priorities := []string{entity.PriorityLow, entity.PriorityMedium, entity.PriorityHigh}
	fmt.Fprintf(b,
		"INSERT INTO announcements (id, title, content, author, department, priority, created_at)\n"+
			"VALUES (%s, %s, %s, 'HR Manager Demo', '', %s, NOW());\n",
		q(uuid.New().String()), q(gofakeit.Sentence(4)), q(gofakeit.Paragraph(1, 3, 8, " ")),
		q(priorities[gofakeit.Number(0, 2)]))
}

// q escapa comillas simples para SQL.
func q(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
