package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"ripple/internal/ast"
	"ripple/internal/source"
)

// FormatASTTree печатает дерево разбора файла с отступами по уровню
// вложенности. Формат строки: имя узла, атрибуты, спан.
func FormatASTTree(w io.Writer, b *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	tp, err := collectTree(b, fileID, fs)
	if err != nil {
		return err
	}
	for _, n := range tp.nodes {
		indent := strings.Repeat("  ", n.depth)
		if n.attrs != "" {
			fmt.Fprintf(w, "%s%s %s @%s\n", indent, n.node, n.attrs, n.span)
			continue
		}
		fmt.Fprintf(w, "%s%s @%s\n", indent, n.node, n.span)
	}
	return nil
}

// ASTNodeJSON is one node of the JSON tree dump.
type ASTNodeJSON struct {
	Node     string        `json:"node"`
	Attrs    string        `json:"attrs,omitempty"`
	Span     string        `json:"span"`
	Children []ASTNodeJSON `json:"children,omitempty"`
}

// FormatASTJSON dumps the same tree as FormatASTTree, nested as JSON.
func FormatASTJSON(w io.Writer, b *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	tp, err := collectTree(b, fileID, fs)
	if err != nil {
		return err
	}
	roots := nestTreeNodes(tp.nodes)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(roots) == 1 {
		return enc.Encode(roots[0])
	}
	return enc.Encode(roots)
}

// nestTreeNodes rebuilds the hierarchy from the flat depth-ordered walk.
func nestTreeNodes(flat []flatNode) []ASTNodeJSON {
	var roots []ASTNodeJSON
	// Стек указателей на последний узел каждого уровня.
	var stack []*ASTNodeJSON
	for _, n := range flat {
		node := ASTNodeJSON{Node: n.node, Attrs: n.attrs, Span: n.span}
		if n.depth >= len(stack) {
			stack = append(stack, nil)
		}
		stack = stack[:n.depth+1]
		if n.depth == 0 {
			roots = append(roots, node)
			stack[0] = &roots[len(roots)-1]
			continue
		}
		parent := stack[n.depth-1]
		parent.Children = append(parent.Children, node)
		stack[n.depth] = &parent.Children[len(parent.Children)-1]
	}
	return roots
}

func collectTree(b *ast.Builder, fileID ast.FileID, fs *source.FileSet) (*treePrinter, error) {
	file := b.Files.Get(fileID)
	if file == nil {
		return nil, fmt.Errorf("file node %d not found", fileID)
	}
	tp := &treePrinter{b: b, fs: fs}
	tp.line(0, "File", "", file.Span)
	for _, itemID := range file.Items {
		tp.printItem(1, itemID)
	}
	return tp, nil
}

type flatNode struct {
	depth int
	node  string
	attrs string
	span  string
}

type treePrinter struct {
	b     *ast.Builder
	fs    *source.FileSet
	nodes []flatNode
}

func (tp *treePrinter) line(depth int, node, attrs string, sp source.Span) {
	tp.nodes = append(tp.nodes, flatNode{depth: depth, node: node, attrs: attrs, span: tp.spanString(sp)})
}

func (tp *treePrinter) spanString(sp source.Span) string {
	if tp.fs == nil {
		return sp.String()
	}
	start, end := tp.fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func (tp *treePrinter) name(id source.StringID) string {
	return tp.b.Strings.Lookup(id)
}

func (tp *treePrinter) printItem(depth int, id ast.ItemID) {
	item := tp.b.Items.Get(id)
	if item == nil {
		return
	}
	switch item.Kind {
	case ast.ItemImport:
		data, ok := tp.b.Items.Import(id)
		if !ok {
			return
		}
		segs := make([]string, 0, len(data.Segments))
		for _, seg := range data.Segments {
			segs = append(segs, tp.name(seg))
		}
		tp.line(depth, "Import", strings.Join(segs, "."), item.Span)

	case ast.ItemLet:
		data, ok := tp.b.Items.Let(id)
		if !ok {
			return
		}
		attrs := tp.name(data.Name)
		if data.IsMut {
			attrs = "mut " + attrs
		}
		if data.Visibility == ast.VisPublic {
			attrs = "pub " + attrs
		}
		tp.line(depth, "Let", attrs, item.Span)
		if data.Type.IsValid() {
			tp.printType(depth+1, data.Type)
		}
		if data.Value.IsValid() {
			tp.printExpr(depth+1, data.Value)
		}

	case ast.ItemFn:
		data, ok := tp.b.Items.Fn(id)
		if !ok {
			return
		}
		attrs := tp.name(data.Name)
		if data.Visibility == ast.VisPublic {
			attrs = "pub " + attrs
		}
		tp.line(depth, "Fn", attrs, item.Span)
		for _, param := range tp.b.Items.CollectParams(data) {
			tp.line(depth+1, "Param", tp.name(param.Name), param.Span)
			if param.Type.IsValid() {
				tp.printType(depth+2, param.Type)
			}
		}
		if data.ReturnType.IsValid() {
			tp.printType(depth+1, data.ReturnType)
		}
		if data.Body.IsValid() {
			tp.printExpr(depth+1, data.Body)
		}
	}
}

func (tp *treePrinter) printType(depth int, id ast.TypeID) {
	t := tp.b.Types.Get(id)
	if t == nil {
		return
	}
	switch t.Kind {
	case ast.TypeExprName:
		tp.line(depth, "Type", tp.name(t.Name), t.Span)
	case ast.TypeExprRef:
		tp.line(depth, "TypeRef", "&", t.Span)
		tp.printType(depth+1, t.Inner)
	}
}

func (tp *treePrinter) printStmt(depth int, id ast.StmtID) {
	stmt := tp.b.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtLet:
		data, _ := tp.b.Stmts.Let(id)
		attrs := tp.name(data.Name)
		if data.Mut {
			attrs = "mut " + attrs
		}
		tp.line(depth, "LetStmt", attrs, stmt.Span)
		if data.Type.IsValid() {
			tp.printType(depth+1, data.Type)
		}
		if data.Init.IsValid() {
			tp.printExpr(depth+1, data.Init)
		}
	case ast.StmtReturn:
		data, _ := tp.b.Stmts.Return(id)
		tp.line(depth, "Return", "", stmt.Span)
		if data.Value.IsValid() {
			tp.printExpr(depth+1, data.Value)
		}
	case ast.StmtFail:
		data, _ := tp.b.Stmts.Fail(id)
		tp.line(depth, "Fail", "", stmt.Span)
		if data.Value.IsValid() {
			tp.printExpr(depth+1, data.Value)
		}
	case ast.StmtBreak:
		tp.line(depth, "Break", "", stmt.Span)
	case ast.StmtContinue:
		tp.line(depth, "Continue", "", stmt.Span)
	case ast.StmtWhile:
		data, _ := tp.b.Stmts.While(id)
		tp.line(depth, "While", "", stmt.Span)
		tp.printExpr(depth+1, data.Cond)
		tp.printExpr(depth+1, data.Body)
	case ast.StmtExpr:
		data, _ := tp.b.Stmts.ExprStmt(id)
		tp.line(depth, "ExprStmt", "", stmt.Span)
		tp.printExpr(depth+1, data.Expr)
	case ast.StmtAssign:
		data, _ := tp.b.Stmts.Assign(id)
		tp.line(depth, "Assign", data.Op.String(), stmt.Span)
		tp.printExpr(depth+1, data.Target)
		tp.printExpr(depth+1, data.Value)
	}
}

func (tp *treePrinter) printExpr(depth int, id ast.ExprID) {
	expr := tp.b.Exprs.Get(id)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := tp.b.Exprs.Ident(id)
		tp.line(depth, "Ident", tp.name(data.Name), expr.Span)
	case ast.ExprLit:
		data, _ := tp.b.Exprs.Literal(id)
		attrs := litKindName(data.Kind)
		if v := tp.name(data.Value); v != "" {
			attrs += " " + v
		}
		tp.line(depth, "Lit", attrs, expr.Span)
	case ast.ExprUnary:
		data, _ := tp.b.Exprs.Unary(id)
		tp.line(depth, "Unary", data.Op.String(), expr.Span)
		tp.printExpr(depth+1, data.Operand)
	case ast.ExprBinary:
		data, _ := tp.b.Exprs.Binary(id)
		tp.line(depth, "Binary", data.Op.String(), expr.Span)
		tp.printExpr(depth+1, data.Left)
		tp.printExpr(depth+1, data.Right)
	case ast.ExprCall:
		data, _ := tp.b.Exprs.Call(id)
		tp.line(depth, "Call", fmt.Sprintf("%d args", len(data.Args)), expr.Span)
		tp.printExpr(depth+1, data.Target)
		for _, arg := range data.Args {
			tp.printExpr(depth+1, arg)
		}
	case ast.ExprIndex:
		data, _ := tp.b.Exprs.Index(id)
		tp.line(depth, "Index", "", expr.Span)
		tp.printExpr(depth+1, data.Target)
		tp.printExpr(depth+1, data.Index)
	case ast.ExprMember:
		data, _ := tp.b.Exprs.Member(id)
		tp.line(depth, "Member", tp.name(data.Field), expr.Span)
		tp.printExpr(depth+1, data.Target)
	case ast.ExprGroup:
		data, _ := tp.b.Exprs.Group(id)
		tp.line(depth, "Group", "", expr.Span)
		tp.printExpr(depth+1, data.Inner)
	case ast.ExprBlock:
		data, _ := tp.b.Exprs.Block(id)
		tp.line(depth, "Block", "", expr.Span)
		for _, stmtID := range data.Stmts {
			tp.printStmt(depth+1, stmtID)
		}
		if data.Tail.IsValid() {
			// Хвост без терминатора — значение блока.
			tp.line(depth+1, "Tail", "", tp.b.Exprs.Get(data.Tail).Span)
			tp.printExpr(depth+2, data.Tail)
		}
	case ast.ExprIf:
		data, _ := tp.b.Exprs.If(id)
		tp.line(depth, "If", "", expr.Span)
		tp.printExpr(depth+1, data.Cond)
		tp.printExpr(depth+1, data.Then)
		if data.Else.IsValid() {
			tp.printExpr(depth+1, data.Else)
		}
	}
}

func litKindName(kind ast.ExprLitKind) string {
	switch kind {
	case ast.ExprLitInt:
		return "int"
	case ast.ExprLitFloat:
		return "float"
	case ast.ExprLitString:
		return "string"
	case ast.ExprLitTrue:
		return "true"
	case ast.ExprLitFalse:
		return "false"
	case ast.ExprLitNothing:
		return "nothing"
	default:
		return "?"
	}
}
