package api

// Request/response structures for the HTTP surface. JSON field names
// are the Portuguese names the frontend sends; validation tags enforce
// only presence, nothing more.

// CadastroRequest defines the payload for the registration endpoint.
// Account credentials and profile fields arrive together because the
// user and profile are created atomically.
type CadastroRequest struct {
	Email                 string `json:"email"        validate:"required"`
	Senha                 string `json:"senha"        validate:"required"`
	TipoPessoa            string `json:"tipo_pessoa"  validate:"required"`
	NomeCompleto          string `json:"nome_completo" validate:"required"`
	CpfCnpj               string `json:"cpf_cnpj"     validate:"required"`
	Endereco              string `json:"endereco"`
	Numero                string `json:"numero"`
	Complemento           string `json:"complemento"`
	Bairro                string `json:"bairro"`
	Cidade                string `json:"cidade"`
	Estado                string `json:"estado"`
	Cep                   string `json:"cep"`
	Telefone              string `json:"telefone"`
	TelefoneEmpresa       string `json:"telefone_empresa"`
	Whatsapp              string `json:"whatsapp"`
	MostrarDadosOrcamento bool   `json:"mostrar_dados_orcamento"`
}

// CadastroResponse defines the successful registration response.
type CadastroResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// PerfilUpdateRequest defines the payload for the profile overwrite.
// Only nome_completo is mandatory.
type PerfilUpdateRequest struct {
	NomeCompleto          string `json:"nome_completo" validate:"required"`
	CpfCnpj               string `json:"cpf_cnpj"`
	Endereco              string `json:"endereco"`
	Numero                string `json:"numero"`
	Complemento           string `json:"complemento"`
	Bairro                string `json:"bairro"`
	Cidade                string `json:"cidade"`
	Estado                string `json:"estado"`
	Cep                   string `json:"cep"`
	Telefone              string `json:"telefone"`
	TelefoneEmpresa       string `json:"telefone_empresa"`
	Whatsapp              string `json:"whatsapp"`
	MostrarDadosOrcamento bool   `json:"mostrar_dados_orcamento"`
}

// OrcamentoRequest defines the payload for creating or overwriting an
// orcamento. Only the two spherical powers are mandatory; every other
// field is free-form.
type OrcamentoRequest struct {
	GrauEsfericoOD   string `json:"grau_esferico_od" validate:"required"`
	GrauEsfericoOE   string `json:"grau_esferico_oe" validate:"required"`
	GrauCilindricoOD string `json:"grau_cilindrico_od"`
	GrauCilindricoOE string `json:"grau_cilindrico_oe"`
	EixoOD           string `json:"eixo_od"`
	EixoOE           string `json:"eixo_oe"`
	DnpOD            string `json:"dnp_od"`
	DnpOE            string `json:"dnp_oe"`
	Adicao           string `json:"adicao"`
	TipoLente        string `json:"tipo_lente"`
	MaterialLente    string `json:"material_lente"`
	TratamentoLente  string `json:"tratamento_lente"`
	Observacoes      string `json:"observacoes"`
	ValorLente       string `json:"valor_lente"`
	ValorArmacao     string `json:"valor_armacao"`
	NomeCliente      string `json:"nome_cliente"`
	CpfCliente       string `json:"cpf_cliente"`
}

// OrcamentoCreateResponse defines the successful creation response.
type OrcamentoCreateResponse struct {
	Message     string `json:"message"`
	OrcamentoID int64  `json:"orcamentoId"`
}
