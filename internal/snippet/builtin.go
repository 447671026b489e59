package snippet

// BuiltinName is the registry-reserved name of the compiled-in snippet.
const BuiltinName = "dashboard-ending"

// BuiltinInstruction tells the operator where to paste the built-in body.
const BuiltinInstruction = "Apply this ending to line 1072+"

// builtinBody is the paste-ready ending for streamlit_safe_dashboard.py.
// The leading and trailing blank lines and all indentation are part of the
// contract and must be preserved byte-for-byte.
const builtinBody = `
    except Exception as e:
        print(f"Error: {e}")

def create_safe_dashboard():
    """Create and return a new StreamlitSafeDashboard instance."""
    return StreamlitSafeDashboard()

# Backward compatibility alias
SafeDashboard = StreamlitSafeDashboard
`

// Builtin returns the snippet compiled into the binary. It resolves without
// a database so the bare invocation path stays dependency-free.
func Builtin() Snippet {
	return Snippet{
		Name:        BuiltinName,
		Description: "proper ending for streamlit_safe_dashboard.py",
		Instruction: BuiltinInstruction,
		Body:        builtinBody,
	}
}

// IsBuiltinName reports whether name refers to the compiled-in snippet.
func IsBuiltinName(name string) bool {
	return name == BuiltinName
}
