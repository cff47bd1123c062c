package triggers

// registers lists the register names accepted as an argument location.
// The table covers every architecture the tracer supports.
var registers = map[string]struct{}{}

func init() {
	for _, set := range [][]string{
		// x86_64
		{"rdi", "rsi", "rdx", "rcx", "r8", "r9", "rax", "rbx", "rbp", "rsp",
			"r10", "r11", "r12", "r13", "r14", "r15",
			"xmm0", "xmm1", "xmm2", "xmm3", "xmm4", "xmm5", "xmm6", "xmm7"},
		// i386
		{"eax", "ebx", "ecx", "edx", "esi", "edi", "ebp", "esp",
			"st0", "st1", "st2", "st3", "st4", "st5", "st6", "st7"},
		// aarch64
		{"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7",
			"d0", "d1", "d2", "d3", "d4", "d5", "d6", "d7"},
		// arm
		{"r0", "r1", "r2", "r3",
			"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9",
			"s10", "s11", "s12", "s13", "s14", "s15"},
	} {
		for _, name := range set {
			registers[name] = struct{}{}
		}
	}
}

// IsRegister reports whether name is a known register
func IsRegister(name string) bool {
	_, ok := registers[name]
	return ok
}
