package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHallCodeFromStudentID(t *testing.T) {
	cases := []struct {
		id   string
		code string
		ok   bool
	}{
		{"MUH2025-0001", "BMAU", true},
		{"ASH2024-1187", "ASH", true},
		{"BKH2023-0042", "HBK", true},
		{"JSH2025-0310", "JSH", true},
		{"NFH2022-0007", "NFH", true},
		{"muh2025-0001", "BMAU", true}, // case-insensitive
		{"  MUH2025-0001 ", "BMAU", true},
		{"XYZ2025-0001", "", false}, // unknown prefix fails closed
		{"MU", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		code, ok := HallCodeFromStudentID(tc.id)
		assert.Equal(t, tc.ok, ok, tc.id)
		assert.Equal(t, tc.code, code, tc.id)
	}
}

func TestIsStudentEmail(t *testing.T) {
	assert.True(t, IsStudentEmail("rahim@student.nstu.edu.bd"))
	assert.True(t, IsStudentEmail("Rahim@STUDENT.NSTU.EDU.BD"))
	assert.False(t, IsStudentEmail("rahim@nstu.edu.bd"))
	assert.False(t, IsStudentEmail("rahim@student.nstu.edu.bd.evil.com"))
	assert.False(t, IsStudentEmail("@student.nstu.edu.bd"))
	assert.False(t, IsStudentEmail(""))
}
