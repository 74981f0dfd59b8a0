package parser

import (
	"slices"

	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/source"
	"ripple/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	src      TokenSource     // поток токенов (Peek/Next)
	arenas   *ast.Builder    // построитель аренных узлов
	file     ast.FileID      // текущий FileID (в AST)
	fs       *source.FileSet // нужен только для спанов/путей при надобности
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile — входная точка для разбора одного файла.
func ParseFile(
	fs *source.FileSet,
	src TokenSource,
	arenas *ast.Builder,
	opts Options,
) Result {
	start := src.Peek().Span
	p := Parser{
		src:      src,
		arenas:   arenas,
		file:     arenas.Files.New(source.Span{File: start.File, Start: start.Start, End: start.Start}),
		fs:       fs,
		opts:     opts,
		lastSpan: source.Span{File: start.File, Start: start.Start, End: start.Start},
	}

	p.parseItems()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.src.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.src.Peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseItems — основной цикл верхнего уровня: пока не EOF — parseItem.
func (p *Parser) parseItems() {
	startSpan := p.src.Peek().Span
	for !p.at(token.EOF) {
		// Лишние ';' между элементами пропускаем как пустые.
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		itemID, ok := p.parseItem()
		if !ok {
			p.resyncTop()
		} else {
			p.arenas.PushItem(p.file, itemID)
		}
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.src.Peek().Span)
}

// parseItem выбирает по первому токену нужный распознаватель top-level
// конструкции: `import`, `let`, `fn` и их `pub` формы.
func (p *Parser) parseItem() (ast.ItemID, bool) {
	switch p.src.Peek().Kind {
	case token.KwImport:
		return p.parseImportItem()
	case token.KwLet:
		return p.parseLetItem(ast.VisPrivate, source.Span{})
	case token.KwFn:
		return p.parseFnItem(ast.VisPrivate, source.Span{})
	case token.KwPub:
		pubTok := p.advance()
		switch p.src.Peek().Kind {
		case token.KwLet:
			return p.parseLetItem(ast.VisPublic, pubTok.Span)
		case token.KwFn:
			return p.parseFnItem(ast.VisPublic, pubTok.Span)
		default:
			p.err(diag.SynUnexpectedToken, "expected 'let' or 'fn' after 'pub', got '"+p.src.Peek().Text+"'")
			return ast.NoItemID, false
		}
	default:
		p.report(diag.SynUnexpectedTopLevel, diag.SevError, p.src.Peek().Span, "unexpected top-level construct")
		return ast.NoItemID, false
	}
}

// resyncTop — восстановление после ошибки на верхнем уровне:
// прокручиваем до ';' ИЛИ до стартового токена следующего item ИЛИ EOF.
func (p *Parser) resyncTop() {
	p.resyncUntil(token.Semicolon, token.KwImport, token.KwLet, token.KwFn, token.KwPub)

	// Если нашли semicolon, съедаем его
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// isTopLevelStarter reports whether k begins a top-level declaration.
func isTopLevelStarter(k token.Kind) bool {
	switch k {
	case token.KwImport, token.KwLet, token.KwFn, token.KwPub:
		return true
	default:
		return false
	}
}

// parseIdent — утилита: ожидает Ident и интернирует его.
// На ошибке — репорт SynExpectIdentifier.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		id := p.arenas.Strings.Intern(tok.Text)
		return id, tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.src.Peek().Text+"\"")
	return source.NoStringID, p.getDiagnosticSpan(), false
}
