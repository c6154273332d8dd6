package vdom

// Element factories are thin wrappers around H with a fixed tag. They share
// H's child normalization and hook behavior.

// Document structure elements

func Html(attrs Attributes, children ...any) *VNode  { return H("html", attrs, children...) }
func Head(attrs Attributes, children ...any) *VNode  { return H("head", attrs, children...) }
func Body(attrs Attributes, children ...any) *VNode  { return H("body", attrs, children...) }
func Title(attrs Attributes, children ...any) *VNode { return H("title", attrs, children...) }
func Meta(attrs Attributes, children ...any) *VNode  { return H("meta", attrs, children...) }
func Link(attrs Attributes, children ...any) *VNode  { return H("link", attrs, children...) }
func Base(attrs Attributes, children ...any) *VNode  { return H("base", attrs, children...) }

// Content sectioning elements

func Header(attrs Attributes, children ...any) *VNode  { return H("header", attrs, children...) }
func Footer(attrs Attributes, children ...any) *VNode  { return H("footer", attrs, children...) }
func Main(attrs Attributes, children ...any) *VNode    { return H("main", attrs, children...) }
func Nav(attrs Attributes, children ...any) *VNode     { return H("nav", attrs, children...) }
func Section(attrs Attributes, children ...any) *VNode { return H("section", attrs, children...) }
func Article(attrs Attributes, children ...any) *VNode { return H("article", attrs, children...) }
func Aside(attrs Attributes, children ...any) *VNode   { return H("aside", attrs, children...) }
func Address(attrs Attributes, children ...any) *VNode { return H("address", attrs, children...) }
func H1(attrs Attributes, children ...any) *VNode      { return H("h1", attrs, children...) }
func H2(attrs Attributes, children ...any) *VNode      { return H("h2", attrs, children...) }
func H3(attrs Attributes, children ...any) *VNode      { return H("h3", attrs, children...) }
func H4(attrs Attributes, children ...any) *VNode      { return H("h4", attrs, children...) }
func H5(attrs Attributes, children ...any) *VNode      { return H("h5", attrs, children...) }
func H6(attrs Attributes, children ...any) *VNode      { return H("h6", attrs, children...) }
func Hgroup(attrs Attributes, children ...any) *VNode  { return H("hgroup", attrs, children...) }

// Text content elements

func Div(attrs Attributes, children ...any) *VNode        { return H("div", attrs, children...) }
func P(attrs Attributes, children ...any) *VNode          { return H("p", attrs, children...) }
func Span(attrs Attributes, children ...any) *VNode       { return H("span", attrs, children...) }
func Pre(attrs Attributes, children ...any) *VNode        { return H("pre", attrs, children...) }
func Blockquote(attrs Attributes, children ...any) *VNode { return H("blockquote", attrs, children...) }
func Ul(attrs Attributes, children ...any) *VNode         { return H("ul", attrs, children...) }
func Ol(attrs Attributes, children ...any) *VNode         { return H("ol", attrs, children...) }
func Li(attrs Attributes, children ...any) *VNode         { return H("li", attrs, children...) }
func Dl(attrs Attributes, children ...any) *VNode         { return H("dl", attrs, children...) }
func Dt(attrs Attributes, children ...any) *VNode         { return H("dt", attrs, children...) }
func Dd(attrs Attributes, children ...any) *VNode         { return H("dd", attrs, children...) }
func Hr(attrs Attributes, children ...any) *VNode         { return H("hr", attrs, children...) }
func Figure(attrs Attributes, children ...any) *VNode     { return H("figure", attrs, children...) }
func Figcaption(attrs Attributes, children ...any) *VNode { return H("figcaption", attrs, children...) }

// Inline text semantics

func A(attrs Attributes, children ...any) *VNode      { return H("a", attrs, children...) }
func Strong(attrs Attributes, children ...any) *VNode { return H("strong", attrs, children...) }
func Em(attrs Attributes, children ...any) *VNode     { return H("em", attrs, children...) }
func B(attrs Attributes, children ...any) *VNode      { return H("b", attrs, children...) }
func I(attrs Attributes, children ...any) *VNode      { return H("i", attrs, children...) }
func U(attrs Attributes, children ...any) *VNode      { return H("u", attrs, children...) }
func S(attrs Attributes, children ...any) *VNode      { return H("s", attrs, children...) }
func Small(attrs Attributes, children ...any) *VNode  { return H("small", attrs, children...) }
func Mark(attrs Attributes, children ...any) *VNode   { return H("mark", attrs, children...) }
func Sub(attrs Attributes, children ...any) *VNode    { return H("sub", attrs, children...) }
func Sup(attrs Attributes, children ...any) *VNode    { return H("sup", attrs, children...) }
func Code(attrs Attributes, children ...any) *VNode   { return H("code", attrs, children...) }
func Kbd(attrs Attributes, children ...any) *VNode    { return H("kbd", attrs, children...) }
func Samp(attrs Attributes, children ...any) *VNode   { return H("samp", attrs, children...) }
func Var(attrs Attributes, children ...any) *VNode    { return H("var", attrs, children...) }
func Abbr(attrs Attributes, children ...any) *VNode   { return H("abbr", attrs, children...) }
func Time_(attrs Attributes, children ...any) *VNode  { return H("time", attrs, children...) }
func Cite(attrs Attributes, children ...any) *VNode   { return H("cite", attrs, children...) }
func Q(attrs Attributes, children ...any) *VNode      { return H("q", attrs, children...) }
func Dfn(attrs Attributes, children ...any) *VNode    { return H("dfn", attrs, children...) }
func Ruby(attrs Attributes, children ...any) *VNode   { return H("ruby", attrs, children...) }
func Rt(attrs Attributes, children ...any) *VNode     { return H("rt", attrs, children...) }
func Rp(attrs Attributes, children ...any) *VNode     { return H("rp", attrs, children...) }
func Bdi(attrs Attributes, children ...any) *VNode    { return H("bdi", attrs, children...) }
func Bdo(attrs Attributes, children ...any) *VNode    { return H("bdo", attrs, children...) }

// DataElement creates a <data> element. Data builds data-* attributes.
func DataElement(attrs Attributes, children ...any) *VNode { return H("data", attrs, children...) }
func Br(attrs Attributes, children ...any) *VNode          { return H("br", attrs, children...) }
func Wbr(attrs Attributes, children ...any) *VNode         { return H("wbr", attrs, children...) }

// Form elements

func Form(attrs Attributes, children ...any) *VNode     { return H("form", attrs, children...) }
func Input(attrs Attributes, children ...any) *VNode    { return H("input", attrs, children...) }
func Textarea(attrs Attributes, children ...any) *VNode { return H("textarea", attrs, children...) }
func Select(attrs Attributes, children ...any) *VNode   { return H("select", attrs, children...) }
func Option(attrs Attributes, children ...any) *VNode   { return H("option", attrs, children...) }
func Optgroup(attrs Attributes, children ...any) *VNode { return H("optgroup", attrs, children...) }
func Button(attrs Attributes, children ...any) *VNode   { return H("button", attrs, children...) }
func Label(attrs Attributes, children ...any) *VNode    { return H("label", attrs, children...) }
func Fieldset(attrs Attributes, children ...any) *VNode { return H("fieldset", attrs, children...) }
func Legend(attrs Attributes, children ...any) *VNode   { return H("legend", attrs, children...) }
func Datalist(attrs Attributes, children ...any) *VNode { return H("datalist", attrs, children...) }
func Output(attrs Attributes, children ...any) *VNode   { return H("output", attrs, children...) }
func Progress(attrs Attributes, children ...any) *VNode { return H("progress", attrs, children...) }
func Meter(attrs Attributes, children ...any) *VNode    { return H("meter", attrs, children...) }

// Table elements

func Table(attrs Attributes, children ...any) *VNode    { return H("table", attrs, children...) }
func Thead(attrs Attributes, children ...any) *VNode    { return H("thead", attrs, children...) }
func Tbody(attrs Attributes, children ...any) *VNode    { return H("tbody", attrs, children...) }
func Tfoot(attrs Attributes, children ...any) *VNode    { return H("tfoot", attrs, children...) }
func Tr(attrs Attributes, children ...any) *VNode       { return H("tr", attrs, children...) }
func Th(attrs Attributes, children ...any) *VNode       { return H("th", attrs, children...) }
func Td(attrs Attributes, children ...any) *VNode       { return H("td", attrs, children...) }
func Caption(attrs Attributes, children ...any) *VNode  { return H("caption", attrs, children...) }
func Colgroup(attrs Attributes, children ...any) *VNode { return H("colgroup", attrs, children...) }
func Col(attrs Attributes, children ...any) *VNode      { return H("col", attrs, children...) }

// Media elements

func Img(attrs Attributes, children ...any) *VNode     { return H("img", attrs, children...) }
func Picture(attrs Attributes, children ...any) *VNode { return H("picture", attrs, children...) }
func Source(attrs Attributes, children ...any) *VNode  { return H("source", attrs, children...) }
func Video(attrs Attributes, children ...any) *VNode   { return H("video", attrs, children...) }
func Audio(attrs Attributes, children ...any) *VNode   { return H("audio", attrs, children...) }
func Track(attrs Attributes, children ...any) *VNode   { return H("track", attrs, children...) }
func Iframe(attrs Attributes, children ...any) *VNode  { return H("iframe", attrs, children...) }
func Embed(attrs Attributes, children ...any) *VNode   { return H("embed", attrs, children...) }
func Object(attrs Attributes, children ...any) *VNode  { return H("object", attrs, children...) }
func Param(attrs Attributes, children ...any) *VNode   { return H("param", attrs, children...) }
func Canvas(attrs Attributes, children ...any) *VNode  { return H("canvas", attrs, children...) }
func Svg(attrs Attributes, children ...any) *VNode     { return H("svg", attrs, children...) }
func Math(attrs Attributes, children ...any) *VNode    { return H("math", attrs, children...) }
func Map_(attrs Attributes, children ...any) *VNode    { return H("map", attrs, children...) }
func Area(attrs Attributes, children ...any) *VNode    { return H("area", attrs, children...) }

// Interactive elements

func Details(attrs Attributes, children ...any) *VNode { return H("details", attrs, children...) }
func Summary(attrs Attributes, children ...any) *VNode { return H("summary", attrs, children...) }
func Dialog(attrs Attributes, children ...any) *VNode  { return H("dialog", attrs, children...) }
func Menu(attrs Attributes, children ...any) *VNode    { return H("menu", attrs, children...) }

// Scripting elements

func Script(attrs Attributes, children ...any) *VNode   { return H("script", attrs, children...) }
func Noscript(attrs Attributes, children ...any) *VNode { return H("noscript", attrs, children...) }
func Template(attrs Attributes, children ...any) *VNode { return H("template", attrs, children...) }
func Slot(attrs Attributes, children ...any) *VNode     { return H("slot", attrs, children...) }
func Style(attrs Attributes, children ...any) *VNode    { return H("style", attrs, children...) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, attrs Attributes, children ...any) *VNode {
	return H(tag, attrs, children...)
}
