package documents

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/domain/pricing"
	"marcenaria_rampanelli/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const (
	companyTitle   = "Orçamento de Móveis Planejados - Rampanelli Planejados"
	companyCNPJ    = "CNPJ: 00.000.000/0001-00"
	companyContact = "Rampanelli Planejados • contato@rampanelli.com • (11) 99999-9999"
	internalNotice = "DOCUMENTO INTERNO - NÃO COMPARTILHAR COM O CLIENTE"
)

var paymentMethods = []string{
	"Pix",
	"Transferência bancária",
	"Dinheiro",
	"Cartão de crédito (sujeito à taxa da maquininha)",
	"Cartão de débito",
}

var extraInfo = []string{
	"Composição do orçamento: Inclui mão de obra, materiais e demais custos relacionados.",
	"Validade do orçamento: 7 dias a partir da emissão. Após esse período, os valores serão atualizados devido à variação nos preços dos insumos.",
	"Condições de pagamento: início do trabalho mediante pagamento conforme acordado (integral no cartão de crédito, com taxa da maquininha, ou sinal de 50% no início e 50% na conclusão).",
	"Desistência: em caso de desistência após o início da produção, o valor do sinal não será reembolsado.",
	"Visita técnica: obrigatória para confirmação de medidas antes da fabricação dos móveis.",
	"Responsabilidade na montagem: é necessário fornecer a planta hidráulica e elétrica do imóvel. Na ausência dessas informações, não nos responsabilizamos por danos a tubulações, fiação elétrica ou outras estruturas internas nas paredes.",
}

var terms = []string{
	"Pagamentos devem ser realizados em até 15 dias da data do orçamento.",
	"Uma taxa de 1,5% ao mês será aplicada a pagamentos em atraso.",
	"Todos os materiais e serviços são cobertos por garantia de 1 ano.",
	"A entrega está prevista para 15 dias úteis após a aprovação do orçamento.",
	"Alterações no projeto podem resultar em custos adicionais e atrasos na entrega.",
	"Este orçamento é válido por 30 dias a partir da data de emissão.",
}

// PDFRenderer produces the two printable renditions of a quote. The internal
// one labels labor as profit and carries a do-not-share footer; the
// client-facing one shows a validity date instead of the status.
type PDFRenderer struct{}

var _ interfaces.IQuoteDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderInternal(q entities.Quote) ([]byte, error) {
	return render(q, true)
}

func (r *PDFRenderer) RenderClient(q entities.Quote) ([]byte, error) {
	return render(q, false)
}

func render(q entities.Quote, internal bool) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header
	pdf.SetTextColor(26, 77, 179)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, tr(companyTitle), "", 1, "L", false, 0, "")
	pdf.SetTextColor(102, 102, 102)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, companyCNPJ, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	if internal {
		pdf.CellFormat(0, 7, tr("ORÇAMENTO INTERNO"), "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 7, tr("ORÇAMENTO"), "", 1, "L", false, 0, "")
	}
	divider(pdf)

	// Reference line
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 6, tr("Nº "+documentNumber(q.ID)), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(60, 6, "Data: "+q.CreatedAt.Format("02/01/2006"), "", 0, "L", false, 0, "")
	if internal {
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Status: "+strings.ToUpper(q.Status.Label()), "", 1, "L", false, 0, "")
	} else {
		validity := time.Now().AddDate(0, 0, 7)
		pdf.CellFormat(0, 6, tr("Válido até: "+validity.Format("02/01/2006")), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	divider(pdf)

	// Customer block
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "DADOS DO CLIENTE", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr("Nome: "+q.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, tr("Telefone: "+q.CustomerPhone), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("E-mail: "+q.CustomerEmail), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Projeto: "+q.ProjectDescription), "", 1, "L", false, 0, "")
	divider(pdf)

	// Items table
	laborLabel := "Mão de Obra"
	if internal {
		laborLabel = "Mão de Obra (Lucro)"
	}

	pdf.SetFillColor(242, 247, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(14, 7, "ITEM", "", 0, "L", true, 0, "")
	pdf.CellFormat(78, 7, tr("DESCRIÇÃO"), "", 0, "L", true, 0, "")
	pdf.CellFormat(14, 7, "QTD", "", 0, "C", true, 0, "")
	pdf.CellFormat(38, 7, "VALOR UNIT.", "", 0, "R", true, 0, "")
	pdf.CellFormat(38, 7, "VALOR TOTAL", "", 1, "R", true, 0, "")

	row := 0
	for _, li := range q.LineItems {
		row++
		itemRow(pdf, tr, row, li.Name, strconv.Itoa(li.Quantity), li.UnitPrice, li.Total(), false)
	}
	for _, c := range q.ExtraCosts {
		row++
		itemRow(pdf, tr, row, c.Description+" (Adicional)", "1", c.Amount, c.Amount, false)
	}
	row++
	itemRow(pdf, tr, row, laborLabel, "1", q.LaborFee, q.LaborFee, true)
	divider(pdf)

	// Totals
	b := pricing.Compute(q.LineItems, q.LaborFee, q.ExtraCosts)
	totalLine(pdf, tr, "Subtotal Materiais:", b.LineItemsSubtotal)
	if b.ExtraCostsSubtotal > 0 {
		totalLine(pdf, tr, "Custos Adicionais:", b.ExtraCostsSubtotal)
	}
	totalLine(pdf, tr, laborLabel+":", b.LaborFee)
	pdf.Ln(2)
	pdf.SetTextColor(26, 77, 179)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(104, 8, "VALOR TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(0, 8, formatBRL(q.TotalAmount), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Payment methods
	section(pdf, tr, "Meios de Pagamento")
	pdf.SetFont("Helvetica", "", 10)
	for _, p := range paymentMethods {
		pdf.CellFormat(0, 5, tr("- "+p), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	// Warranty
	section(pdf, tr, "Garantia")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr("Período de garantia: 3 anos"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(102, 102, 102)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 4.5, tr("A garantia não cobre danos decorrentes de mau uso, como batidas, riscos, excesso de peso sobre ou dentro dos móveis, entre outros."), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	// Additional information
	section(pdf, tr, "Informações Adicionais")
	pdf.SetTextColor(102, 102, 102)
	pdf.SetFont("Helvetica", "", 9)
	for _, info := range extraInfo {
		pdf.MultiCell(0, 4.5, tr(info), "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	// Thanks
	section(pdf, tr, "Agradecimento")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr("A Rampanelli Planejados agradece pela confiança e preferência! Estamos à disposição para tornar seu projeto realidade."), "", "L", false)
	pdf.Ln(3)

	// Notes
	if strings.TrimSpace(q.Notes) != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, tr("OBSERVAÇÕES"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(q.Notes), "", "L", false)
		pdf.Ln(2)
	}

	// Terms
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, tr("TERMOS E CONDIÇÕES"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(102, 102, 102)
	pdf.SetFont("Helvetica", "", 9)
	for _, term := range terms {
		pdf.MultiCell(0, 4.5, tr("- "+term), "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)

	// Footer
	pdf.Ln(6)
	pdf.SetDrawColor(102, 102, 102)
	x, y := pdf.GetXY()
	pdf.Line(14, y, 196, y)
	pdf.SetXY(x, y+2)
	if internal {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 5, tr(internalNotice), "", 1, "C", false, 0, "")
	}
	pdf.SetTextColor(102, 102, 102)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, tr(companyContact), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func divider(pdf *fpdf.Fpdf) {
	pdf.Ln(1)
	_, y := pdf.GetXY()
	pdf.SetDrawColor(102, 102, 102)
	pdf.Line(14, y, 196, y)
	pdf.Ln(3)
}

func section(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr(title), "", 1, "L", false, 0, "")
}

func itemRow(pdf *fpdf.Fpdf, tr func(string) string, n int, name, qty string, unit, total int64, bold bool) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(14, 6, strconv.Itoa(n), "B", 0, "L", false, 0, "")
	if bold {
		pdf.SetFont("Helvetica", "B", 10)
	}
	pdf.CellFormat(78, 6, tr(name), "B", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(14, 6, qty, "B", 0, "C", false, 0, "")
	pdf.CellFormat(38, 6, formatBRL(unit), "B", 0, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(38, 6, formatBRL(total), "B", 1, "R", false, 0, "")
}

func totalLine(pdf *fpdf.Fpdf, tr func(string) string, label string, amount int64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(104, 6, tr(label), "", 0, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, formatBRL(amount), "", 1, "R", false, 0, "")
}

// documentNumber renders short ids zero-padded like printed order numbers;
// uuids are shown as-is.
func documentNumber(id string) string {
	if len(id) < 6 {
		return strings.Repeat("0", 6-len(id)) + id
	}
	return id
}

// formatBRL renders centavos as "R$ 1.234,56".
func formatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	reais := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(reais, 10)
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)

	return fmt.Sprintf("R$ %s%s,%02d", sign, strings.Join(parts, "."), frac)
}
