package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/collegeadmin/internal/app/models/dto"
)

func TestStruct_AddStudent(t *testing.T) {
	tests := []struct {
		name string
		req  dto.AddStudentRequest
		want []string
	}{
		{
			name: "valid",
			req:  dto.AddStudentRequest{SID: "G001", Name: "Sean Smith", Age: 32},
		},
		{
			name: "boundary values",
			req:  dto.AddStudentRequest{SID: "G001", Name: "Al", Age: 18},
		},
		{
			name: "sid too short",
			req:  dto.AddStudentRequest{SID: "G01", Name: "Sean Smith", Age: 32},
			want: []string{MsgStudentID},
		},
		{
			name: "sid too long",
			req:  dto.AddStudentRequest{SID: "G0011", Name: "Sean Smith", Age: 32},
			want: []string{MsgStudentID},
		},
		{
			name: "sid counted in characters",
			req:  dto.AddStudentRequest{SID: "Ü001", Name: "Sean Smith", Age: 32},
		},
		{
			name: "name too short",
			req:  dto.AddStudentRequest{SID: "G001", Name: "S", Age: 32},
			want: []string{MsgStudentName},
		},
		{
			name: "under age",
			req:  dto.AddStudentRequest{SID: "G001", Name: "Sean Smith", Age: 17},
			want: []string{MsgStudentAge},
		},
		{
			name: "negative age",
			req:  dto.AddStudentRequest{SID: "G001", Name: "Sean Smith", Age: -20},
			want: []string{MsgStudentAge},
		},
		{
			name: "everything missing keeps fixed order",
			req:  dto.AddStudentRequest{},
			want: []string{MsgStudentID, MsgStudentName, MsgStudentAge},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Struct(tt.req)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStruct_UpdateStudent(t *testing.T) {
	assert.Empty(t, Struct(dto.UpdateStudentRequest{Name: "Mary", Age: 18}))
	assert.Equal(t,
		[]string{MsgStudentName, MsgStudentAge},
		Struct(dto.UpdateStudentRequest{Name: "", Age: 0}),
	)
}

func TestStudentExistsMessage(t *testing.T) {
	assert.Equal(t, "Student with ID G001 already exists.", StudentExistsMessage("G001"))
}
