package symtab

import "testing"

func TestFindMostRecentWins(t *testing.T) {
	tab := New()
	tab.EnterFunction()
	if err := tab.AddVariable("x", INT, 0); err != nil {
		t.Fatal(err)
	}
	tab.LeaveFunction()
	tab.EnterFunction()
	if err := tab.AddVariable("y", FLOAT, 0); err != nil {
		t.Fatal(err)
	}

	sym, ok := tab.Find("x", Variable)
	if !ok || sym.ValueType != INT {
		t.Fatalf("Find(x) = %v, %v", sym, ok)
	}
	if _, ok := tab.Find("z", Variable); ok {
		t.Fatal("Find(z) should miss")
	}

	// A later declaration of the same name shadows the earlier one.
	tab.LeaveFunction()
	if err := tab.AddVariable("x", CHAR, 0); err != nil {
		t.Fatal(err)
	}
	if sym, ok := tab.Find("x", Variable); !ok || sym.ValueType != CHAR {
		t.Fatalf("Find(x) after redeclaration = %v, %v, want the CHAR symbol", sym, ok)
	}
}

func TestDoubleDeclarationVariable(t *testing.T) {
	tab := New()
	tab.EnterFunction()
	if err := tab.AddVariable("x", INT, 0); err != nil {
		t.Fatal(err)
	}
	if err := tab.AddVariable("x", FLOAT, 0); err == nil {
		t.Fatal("expected double declaration error")
	}
}

func TestDoubleDeclarationFunction(t *testing.T) {
	tab := New()
	if err := tab.AddFunction("f", nil); err != nil {
		t.Fatal(err)
	}
	if err := tab.AddFunction("f", []ValueType{INT}); err == nil {
		t.Fatal("expected double declaration error")
	}
}

func TestParametersInsertedBeforeFunctionSymbol(t *testing.T) {
	tab := New()
	tab.EnterFunction()
	if err := tab.AddVariable("n", INT, 0); err != nil {
		t.Fatal(err)
	}
	tab.LeaveFunction()
	if err := tab.AddFunction("sq", []ValueType{INT}); err != nil {
		t.Fatal(err)
	}

	// Both the parameter and the function must be findable, and the
	// parameter must still resolve as a Variable: scope-1 visibility is
	// never popped.
	if _, ok := tab.Find("n", Variable); !ok {
		t.Fatal("parameter n should be findable as a variable")
	}
	if _, ok := tab.Find("sq", Function); !ok {
		t.Fatal("function sq should be findable")
	}
}

func TestArraySymbol(t *testing.T) {
	tab := New()
	if err := tab.AddVariable("a", INT, 3); err != nil {
		t.Fatal(err)
	}
	sym, _ := tab.Find("a", Variable)
	if !sym.IsArray() {
		t.Fatal("expected array symbol")
	}
	if sym.ArraySize != 3 {
		t.Errorf("ArraySize = %d, want 3", sym.ArraySize)
	}
}

func TestCType(t *testing.T) {
	cases := map[ValueType]string{INT: "int", CHAR: "char", FLOAT: "float"}
	for vt, want := range cases {
		if got := vt.CType(); got != want {
			t.Errorf("%v.CType() = %q, want %q", vt, got, want)
		}
	}
}
