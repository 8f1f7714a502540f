package employee

// DemoEmployees is the fixture the directory starts with when demo seeding
// is enabled. Ids follow the SequenceGenerator format.
func DemoEmployees() []Employee {
	return []Employee{
		{ID: "e0000001", Name: "Nguyen Van A", DateOfBirth: "1995-04-12", Gender: GenderMale, Email: "a.nguyen@example.com", Address: "12 Le Loi, Q1, HCM"},
		{ID: "e0000002", Name: "Tran Thi B", DateOfBirth: "1998-10-30", Gender: GenderFemale, Email: "b.tran@example.com", Address: "34 Hai Ba Trung, Q1, HCM"},
		{ID: "e0000003", Name: "Le Van C", DateOfBirth: "1990-07-22", Gender: GenderMale, Email: "c.le@example.com", Address: "56 Dinh Tien Hoang, Binh Thanh, HCM"},
		{ID: "e0000004", Name: "Pham Thi D", DateOfBirth: "2000-01-15", Gender: GenderFemale, Email: "d.pham@example.com", Address: "789 Nguyen Kiem, Phu Nhuan, HCM"},
		{ID: "e0000005", Name: "Hoang Van E", DateOfBirth: "1988-11-05", Gender: GenderMale, Email: "e.hoang@example.com", Address: "101 Vo Van Tan, Q3, HCM"},
		{ID: "e0000006", Name: "Do Thi F", DateOfBirth: "1993-02-28", Gender: GenderFemale, Email: "f.do@example.com", Address: "22 Ly Tu Trong, Q1, HCM"},
		{ID: "e0000007", Name: "Vu Van G", DateOfBirth: "1997-09-10", Gender: GenderMale, Email: "g.vu@example.com", Address: "33 Nguyen Trai, Q5, HCM"},
		{ID: "e0000008", Name: "Bui Thi H", DateOfBirth: "1992-12-19", Gender: GenderOther, Email: "h.bui@example.com", Address: "45 Mac Dinh Chi, Da Kao, Q1, HCM"},
	}
}
