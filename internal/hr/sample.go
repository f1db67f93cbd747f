package hr

// SampleEmployees returns the rows used to seed a fresh development store.
func SampleEmployees() []Employee {
    return []Employee{
        {FullName: "John", Position: "sm", Language: "Agile", SalaryGrade: 3, IsRegularEmployee: true},
        {FullName: "James", Position: "sm", Language: "Agile", SalaryGrade: 3, IsRegularEmployee: true},
        {FullName: "Jacob", Position: "dev", Language: "Python", SalaryGrade: 2, IsRegularEmployee: false},
    }
}
