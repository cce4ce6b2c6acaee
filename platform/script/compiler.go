package script

import "io"

// Compiler defines the interface for validating scripts without executing them.
// It checks syntax and semantics, and may perform parsing, compilation,
// and optimization. A valid script is returned as ExecutableContent.
//
// Example usage:
//
//	var comp Compiler = compiler.New()
//	executableContent, err := comp.Compile(scriptReader)
//	if err != nil {
//	    // Handle validation error
//	}
//	// Retain executableContent for a later (out of scope here) execution step
type Compiler interface {
	// Compile checks if a script is valid and returns it as executable content.
	// Compiling never runs the script; only syntax and semantic validation is
	// performed. The reader is closed before Compile returns, on every path.
	//
	// Parameters:
	//   - scriptReader: the script source content
	//
	// Returns:
	//   - ExecutableContent: The validated, compiled script
	//   - error: Details about validation failures (syntax errors, bad input)
	Compile(scriptReader io.ReadCloser) (ExecutableContent, error)
}
