package services

// Services defined in this package:
// - StudentService: student records, module registration, averages
// - ModuleService: the module catalog
// - GradeService: registration-gated grade recording and lookup
