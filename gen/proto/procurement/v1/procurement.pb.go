// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: procurement/v1/procurement.proto

package procurementv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type IngestFileRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Path  string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	// Optional hint: BID, CONTRACT or a synonym. Empty lets the filename and
	// later the content decide.
	DocType string `protobuf:"bytes,2,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	// Enqueue extraction after ingest.
	Process bool `protobuf:"varint,3,opt,name=process,proto3" json:"process,omitempty"`
	// Do not enqueue files whose content hash was already on file.
	SkipDuplicates bool `protobuf:"varint,4,opt,name=skip_duplicates,json=skipDuplicates,proto3" json:"skip_duplicates,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{0}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *IngestFileRequest) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *IngestFileRequest) GetProcess() bool {
	if x != nil {
		return x.Process
	}
	return false
}

func (x *IngestFileRequest) GetSkipDuplicates() bool {
	if x != nil {
		return x.SkipDuplicates
	}
	return false
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	DocType        string                 `protobuf:"bytes,5,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,6,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	SourcePath     string                 `protobuf:"bytes,7,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{1}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	RootPath string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	DocType  string                 `protobuf:"bytes,2,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	// Hidden files and dot-directories are skipped unless set.
	IncludeHidden  bool `protobuf:"varint,3,opt,name=include_hidden,json=includeHidden,proto3" json:"include_hidden,omitempty"`
	Process        bool `protobuf:"varint,4,opt,name=process,proto3" json:"process,omitempty"`
	SkipDuplicates bool `protobuf:"varint,5,opt,name=skip_duplicates,json=skipDuplicates,proto3" json:"skip_duplicates,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{2}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *IngestDirectoryRequest) GetIncludeHidden() bool {
	if x != nil {
		return x.IncludeHidden
	}
	return false
}

func (x *IngestDirectoryRequest) GetProcess() bool {
	if x != nil {
		return x.Process
	}
	return false
}

func (x *IngestDirectoryRequest) GetSkipDuplicates() bool {
	if x != nil {
		return x.SkipDuplicates
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{3}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type Contract struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ContractNo    string                 `protobuf:"bytes,2,opt,name=contract_no,json=contractNo,proto3" json:"contract_no,omitempty"`
	GeneratedDate string                 `protobuf:"bytes,3,opt,name=generated_date,json=generatedDate,proto3" json:"generated_date,omitempty"` // YYYY-MM-DD
	HasEmbedding  bool                   `protobuf:"varint,4,opt,name=has_embedding,json=hasEmbedding,proto3" json:"has_embedding,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Contract) Reset() {
	*x = Contract{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contract) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contract) ProtoMessage() {}

func (x *Contract) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contract.ProtoReflect.Descriptor instead.
func (*Contract) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{4}
}

func (x *Contract) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contract) GetContractNo() string {
	if x != nil {
		return x.ContractNo
	}
	return ""
}

func (x *Contract) GetGeneratedDate() string {
	if x != nil {
		return x.GeneratedDate
	}
	return ""
}

func (x *Contract) GetHasEmbedding() bool {
	if x != nil {
		return x.HasEmbedding
	}
	return false
}

func (x *Contract) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Contract) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type OrganisationDetail struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Type             string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Ministry         string                 `protobuf:"bytes,2,opt,name=ministry,proto3" json:"ministry,omitempty"`
	Department       string                 `protobuf:"bytes,3,opt,name=department,proto3" json:"department,omitempty"`
	OrganisationName string                 `protobuf:"bytes,4,opt,name=organisation_name,json=organisationName,proto3" json:"organisation_name,omitempty"`
	OfficeZone       string                 `protobuf:"bytes,5,opt,name=office_zone,json=officeZone,proto3" json:"office_zone,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *OrganisationDetail) Reset() {
	*x = OrganisationDetail{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrganisationDetail) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrganisationDetail) ProtoMessage() {}

func (x *OrganisationDetail) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrganisationDetail.ProtoReflect.Descriptor instead.
func (*OrganisationDetail) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{5}
}

func (x *OrganisationDetail) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *OrganisationDetail) GetMinistry() string {
	if x != nil {
		return x.Ministry
	}
	return ""
}

func (x *OrganisationDetail) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *OrganisationDetail) GetOrganisationName() string {
	if x != nil {
		return x.OrganisationName
	}
	return ""
}

func (x *OrganisationDetail) GetOfficeZone() string {
	if x != nil {
		return x.OfficeZone
	}
	return ""
}

type BuyerDetail struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Designation   string                 `protobuf:"bytes,1,opt,name=designation,proto3" json:"designation,omitempty"`
	ContactNo     string                 `protobuf:"bytes,2,opt,name=contact_no,json=contactNo,proto3" json:"contact_no,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Gstin         string                 `protobuf:"bytes,4,opt,name=gstin,proto3" json:"gstin,omitempty"`
	Address       string                 `protobuf:"bytes,5,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BuyerDetail) Reset() {
	*x = BuyerDetail{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BuyerDetail) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BuyerDetail) ProtoMessage() {}

func (x *BuyerDetail) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BuyerDetail.ProtoReflect.Descriptor instead.
func (*BuyerDetail) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{6}
}

func (x *BuyerDetail) GetDesignation() string {
	if x != nil {
		return x.Designation
	}
	return ""
}

func (x *BuyerDetail) GetContactNo() string {
	if x != nil {
		return x.ContactNo
	}
	return ""
}

func (x *BuyerDetail) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *BuyerDetail) GetGstin() string {
	if x != nil {
		return x.Gstin
	}
	return ""
}

func (x *BuyerDetail) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type FinancialApproval struct {
	state                        protoimpl.MessageState `protogen:"open.v1"`
	IfdConcurrence               bool                   `protobuf:"varint,1,opt,name=ifd_concurrence,json=ifdConcurrence,proto3" json:"ifd_concurrence,omitempty"`
	AdminApprovalDesignation     string                 `protobuf:"bytes,2,opt,name=admin_approval_designation,json=adminApprovalDesignation,proto3" json:"admin_approval_designation,omitempty"`
	FinancialApprovalDesignation string                 `protobuf:"bytes,3,opt,name=financial_approval_designation,json=financialApprovalDesignation,proto3" json:"financial_approval_designation,omitempty"`
	unknownFields                protoimpl.UnknownFields
	sizeCache                    protoimpl.SizeCache
}

func (x *FinancialApproval) Reset() {
	*x = FinancialApproval{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinancialApproval) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinancialApproval) ProtoMessage() {}

func (x *FinancialApproval) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinancialApproval.ProtoReflect.Descriptor instead.
func (*FinancialApproval) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{7}
}

func (x *FinancialApproval) GetIfdConcurrence() bool {
	if x != nil {
		return x.IfdConcurrence
	}
	return false
}

func (x *FinancialApproval) GetAdminApprovalDesignation() string {
	if x != nil {
		return x.AdminApprovalDesignation
	}
	return ""
}

func (x *FinancialApproval) GetFinancialApprovalDesignation() string {
	if x != nil {
		return x.FinancialApprovalDesignation
	}
	return ""
}

type PayingAuthority struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          string                 `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"`
	PaymentMode   string                 `protobuf:"bytes,2,opt,name=payment_mode,json=paymentMode,proto3" json:"payment_mode,omitempty"`
	Designation   string                 `protobuf:"bytes,3,opt,name=designation,proto3" json:"designation,omitempty"`
	Email         string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Gstin         string                 `protobuf:"bytes,5,opt,name=gstin,proto3" json:"gstin,omitempty"`
	Address       string                 `protobuf:"bytes,6,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PayingAuthority) Reset() {
	*x = PayingAuthority{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PayingAuthority) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PayingAuthority) ProtoMessage() {}

func (x *PayingAuthority) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PayingAuthority.ProtoReflect.Descriptor instead.
func (*PayingAuthority) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{8}
}

func (x *PayingAuthority) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *PayingAuthority) GetPaymentMode() string {
	if x != nil {
		return x.PaymentMode
	}
	return ""
}

func (x *PayingAuthority) GetDesignation() string {
	if x != nil {
		return x.Designation
	}
	return ""
}

func (x *PayingAuthority) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *PayingAuthority) GetGstin() string {
	if x != nil {
		return x.Gstin
	}
	return ""
}

func (x *PayingAuthority) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type SellerDetail struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	GemSellerId            string                 `protobuf:"bytes,1,opt,name=gem_seller_id,json=gemSellerId,proto3" json:"gem_seller_id,omitempty"`
	CompanyName            string                 `protobuf:"bytes,2,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	ContactNo              string                 `protobuf:"bytes,3,opt,name=contact_no,json=contactNo,proto3" json:"contact_no,omitempty"`
	Email                  string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Address                string                 `protobuf:"bytes,5,opt,name=address,proto3" json:"address,omitempty"`
	MsmeRegistrationNumber string                 `protobuf:"bytes,6,opt,name=msme_registration_number,json=msmeRegistrationNumber,proto3" json:"msme_registration_number,omitempty"`
	Gstin                  string                 `protobuf:"bytes,7,opt,name=gstin,proto3" json:"gstin,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *SellerDetail) Reset() {
	*x = SellerDetail{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SellerDetail) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SellerDetail) ProtoMessage() {}

func (x *SellerDetail) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SellerDetail.ProtoReflect.Descriptor instead.
func (*SellerDetail) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{9}
}

func (x *SellerDetail) GetGemSellerId() string {
	if x != nil {
		return x.GemSellerId
	}
	return ""
}

func (x *SellerDetail) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *SellerDetail) GetContactNo() string {
	if x != nil {
		return x.ContactNo
	}
	return ""
}

func (x *SellerDetail) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *SellerDetail) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *SellerDetail) GetMsmeRegistrationNumber() string {
	if x != nil {
		return x.MsmeRegistrationNumber
	}
	return ""
}

func (x *SellerDetail) GetGstin() string {
	if x != nil {
		return x.Gstin
	}
	return ""
}

type ProductSpecification struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	SubSpec       string                 `protobuf:"bytes,2,opt,name=sub_spec,json=subSpec,proto3" json:"sub_spec,omitempty"`
	Value         string                 `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProductSpecification) Reset() {
	*x = ProductSpecification{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProductSpecification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProductSpecification) ProtoMessage() {}

func (x *ProductSpecification) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProductSpecification.ProtoReflect.Descriptor instead.
func (*ProductSpecification) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{10}
}

func (x *ProductSpecification) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ProductSpecification) GetSubSpec() string {
	if x != nil {
		return x.SubSpec
	}
	return ""
}

func (x *ProductSpecification) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type ConsigneeDetail struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SNo           int32                  `protobuf:"varint,1,opt,name=s_no,json=sNo,proto3" json:"s_no,omitempty"`
	Designation   string                 `protobuf:"bytes,2,opt,name=designation,proto3" json:"designation,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Contact       string                 `protobuf:"bytes,4,opt,name=contact,proto3" json:"contact,omitempty"`
	Gstin         string                 `protobuf:"bytes,5,opt,name=gstin,proto3" json:"gstin,omitempty"`
	Address       string                 `protobuf:"bytes,6,opt,name=address,proto3" json:"address,omitempty"`
	LotNo         string                 `protobuf:"bytes,7,opt,name=lot_no,json=lotNo,proto3" json:"lot_no,omitempty"`
	Quantity      int32                  `protobuf:"varint,8,opt,name=quantity,proto3" json:"quantity,omitempty"`
	DeliveryStart string                 `protobuf:"bytes,9,opt,name=delivery_start,json=deliveryStart,proto3" json:"delivery_start,omitempty"` // YYYY-MM-DD
	DeliveryEnd   string                 `protobuf:"bytes,10,opt,name=delivery_end,json=deliveryEnd,proto3" json:"delivery_end,omitempty"`      // YYYY-MM-DD
	DeliveryTo    string                 `protobuf:"bytes,11,opt,name=delivery_to,json=deliveryTo,proto3" json:"delivery_to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConsigneeDetail) Reset() {
	*x = ConsigneeDetail{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConsigneeDetail) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConsigneeDetail) ProtoMessage() {}

func (x *ConsigneeDetail) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConsigneeDetail.ProtoReflect.Descriptor instead.
func (*ConsigneeDetail) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{11}
}

func (x *ConsigneeDetail) GetSNo() int32 {
	if x != nil {
		return x.SNo
	}
	return 0
}

func (x *ConsigneeDetail) GetDesignation() string {
	if x != nil {
		return x.Designation
	}
	return ""
}

func (x *ConsigneeDetail) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *ConsigneeDetail) GetContact() string {
	if x != nil {
		return x.Contact
	}
	return ""
}

func (x *ConsigneeDetail) GetGstin() string {
	if x != nil {
		return x.Gstin
	}
	return ""
}

func (x *ConsigneeDetail) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ConsigneeDetail) GetLotNo() string {
	if x != nil {
		return x.LotNo
	}
	return ""
}

func (x *ConsigneeDetail) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *ConsigneeDetail) GetDeliveryStart() string {
	if x != nil {
		return x.DeliveryStart
	}
	return ""
}

func (x *ConsigneeDetail) GetDeliveryEnd() string {
	if x != nil {
		return x.DeliveryEnd
	}
	return ""
}

func (x *ConsigneeDetail) GetDeliveryTo() string {
	if x != nil {
		return x.DeliveryTo
	}
	return ""
}

type Product struct {
	state                protoimpl.MessageState  `protogen:"open.v1"`
	Id                   string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProductName          string                  `protobuf:"bytes,2,opt,name=product_name,json=productName,proto3" json:"product_name,omitempty"`
	Brand                string                  `protobuf:"bytes,3,opt,name=brand,proto3" json:"brand,omitempty"`
	BrandType            string                  `protobuf:"bytes,4,opt,name=brand_type,json=brandType,proto3" json:"brand_type,omitempty"`
	CatalogueStatus      string                  `protobuf:"bytes,5,opt,name=catalogue_status,json=catalogueStatus,proto3" json:"catalogue_status,omitempty"`
	SellingAs            string                  `protobuf:"bytes,6,opt,name=selling_as,json=sellingAs,proto3" json:"selling_as,omitempty"`
	CategoryNameQuadrant string                  `protobuf:"bytes,7,opt,name=category_name_quadrant,json=categoryNameQuadrant,proto3" json:"category_name_quadrant,omitempty"`
	Model                string                  `protobuf:"bytes,8,opt,name=model,proto3" json:"model,omitempty"`
	HsnCode              string                  `protobuf:"bytes,9,opt,name=hsn_code,json=hsnCode,proto3" json:"hsn_code,omitempty"`
	OrderedQuantity      string                  `protobuf:"bytes,10,opt,name=ordered_quantity,json=orderedQuantity,proto3" json:"ordered_quantity,omitempty"`
	Unit                 string                  `protobuf:"bytes,11,opt,name=unit,proto3" json:"unit,omitempty"`
	UnitPrice            string                  `protobuf:"bytes,12,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	TaxBifurcation       string                  `protobuf:"bytes,13,opt,name=tax_bifurcation,json=taxBifurcation,proto3" json:"tax_bifurcation,omitempty"`
	TotalPrice           string                  `protobuf:"bytes,14,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"`
	Note                 string                  `protobuf:"bytes,15,opt,name=note,proto3" json:"note,omitempty"`
	Specifications       []*ProductSpecification `protobuf:"bytes,16,rep,name=specifications,proto3" json:"specifications,omitempty"`
	Consignees           []*ConsigneeDetail      `protobuf:"bytes,17,rep,name=consignees,proto3" json:"consignees,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Product) Reset() {
	*x = Product{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Product) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Product) ProtoMessage() {}

func (x *Product) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Product.ProtoReflect.Descriptor instead.
func (*Product) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{12}
}

func (x *Product) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Product) GetProductName() string {
	if x != nil {
		return x.ProductName
	}
	return ""
}

func (x *Product) GetBrand() string {
	if x != nil {
		return x.Brand
	}
	return ""
}

func (x *Product) GetBrandType() string {
	if x != nil {
		return x.BrandType
	}
	return ""
}

func (x *Product) GetCatalogueStatus() string {
	if x != nil {
		return x.CatalogueStatus
	}
	return ""
}

func (x *Product) GetSellingAs() string {
	if x != nil {
		return x.SellingAs
	}
	return ""
}

func (x *Product) GetCategoryNameQuadrant() string {
	if x != nil {
		return x.CategoryNameQuadrant
	}
	return ""
}

func (x *Product) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *Product) GetHsnCode() string {
	if x != nil {
		return x.HsnCode
	}
	return ""
}

func (x *Product) GetOrderedQuantity() string {
	if x != nil {
		return x.OrderedQuantity
	}
	return ""
}

func (x *Product) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *Product) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *Product) GetTaxBifurcation() string {
	if x != nil {
		return x.TaxBifurcation
	}
	return ""
}

func (x *Product) GetTotalPrice() string {
	if x != nil {
		return x.TotalPrice
	}
	return ""
}

func (x *Product) GetNote() string {
	if x != nil {
		return x.Note
	}
	return ""
}

func (x *Product) GetSpecifications() []*ProductSpecification {
	if x != nil {
		return x.Specifications
	}
	return nil
}

func (x *Product) GetConsignees() []*ConsigneeDetail {
	if x != nil {
		return x.Consignees
	}
	return nil
}

type ContractRecord struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Contract          *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	Organisation      *OrganisationDetail    `protobuf:"bytes,2,opt,name=organisation,proto3" json:"organisation,omitempty"`
	Buyer             *BuyerDetail           `protobuf:"bytes,3,opt,name=buyer,proto3" json:"buyer,omitempty"`
	FinancialApproval *FinancialApproval     `protobuf:"bytes,4,opt,name=financial_approval,json=financialApproval,proto3" json:"financial_approval,omitempty"`
	PayingAuthority   *PayingAuthority       `protobuf:"bytes,5,opt,name=paying_authority,json=payingAuthority,proto3" json:"paying_authority,omitempty"`
	Seller            *SellerDetail          `protobuf:"bytes,6,opt,name=seller,proto3" json:"seller,omitempty"`
	EpbgDetail        string                 `protobuf:"bytes,7,opt,name=epbg_detail,json=epbgDetail,proto3" json:"epbg_detail,omitempty"`
	Products          []*Product             `protobuf:"bytes,8,rep,name=products,proto3" json:"products,omitempty"`
	Terms             []string               `protobuf:"bytes,9,rep,name=terms,proto3" json:"terms,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ContractRecord) Reset() {
	*x = ContractRecord{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContractRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContractRecord) ProtoMessage() {}

func (x *ContractRecord) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContractRecord.ProtoReflect.Descriptor instead.
func (*ContractRecord) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{13}
}

func (x *ContractRecord) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

func (x *ContractRecord) GetOrganisation() *OrganisationDetail {
	if x != nil {
		return x.Organisation
	}
	return nil
}

func (x *ContractRecord) GetBuyer() *BuyerDetail {
	if x != nil {
		return x.Buyer
	}
	return nil
}

func (x *ContractRecord) GetFinancialApproval() *FinancialApproval {
	if x != nil {
		return x.FinancialApproval
	}
	return nil
}

func (x *ContractRecord) GetPayingAuthority() *PayingAuthority {
	if x != nil {
		return x.PayingAuthority
	}
	return nil
}

func (x *ContractRecord) GetSeller() *SellerDetail {
	if x != nil {
		return x.Seller
	}
	return nil
}

func (x *ContractRecord) GetEpbgDetail() string {
	if x != nil {
		return x.EpbgDetail
	}
	return ""
}

func (x *ContractRecord) GetProducts() []*Product {
	if x != nil {
		return x.Products
	}
	return nil
}

func (x *ContractRecord) GetTerms() []string {
	if x != nil {
		return x.Terms
	}
	return nil
}

type ListContractsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsRequest) Reset() {
	*x = ListContractsRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsRequest) ProtoMessage() {}

func (x *ListContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsRequest.ProtoReflect.Descriptor instead.
func (*ListContractsRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{14}
}

func (x *ListContractsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListContractsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListContractsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListContractsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contracts     []*Contract            `protobuf:"bytes,1,rep,name=contracts,proto3" json:"contracts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsResponse) Reset() {
	*x = ListContractsResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsResponse) ProtoMessage() {}

func (x *ListContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsResponse.ProtoReflect.Descriptor instead.
func (*ListContractsResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{15}
}

func (x *ListContractsResponse) GetContracts() []*Contract {
	if x != nil {
		return x.Contracts
	}
	return nil
}

type GetContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractNo    string                 `protobuf:"bytes,1,opt,name=contract_no,json=contractNo,proto3" json:"contract_no,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractRequest) Reset() {
	*x = GetContractRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractRequest) ProtoMessage() {}

func (x *GetContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractRequest.ProtoReflect.Descriptor instead.
func (*GetContractRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{16}
}

func (x *GetContractRequest) GetContractNo() string {
	if x != nil {
		return x.ContractNo
	}
	return ""
}

type GetContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *ContractRecord        `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractResponse) Reset() {
	*x = GetContractResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractResponse) ProtoMessage() {}

func (x *GetContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractResponse.ProtoReflect.Descriptor instead.
func (*GetContractResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{17}
}

func (x *GetContractResponse) GetRecord() *ContractRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type ImportParsedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FieldsJson    []byte                 `protobuf:"bytes,1,opt,name=fields_json,json=fieldsJson,proto3" json:"fields_json,omitempty"`
	RawText       string                 `protobuf:"bytes,2,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportParsedRequest) Reset() {
	*x = ImportParsedRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportParsedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportParsedRequest) ProtoMessage() {}

func (x *ImportParsedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportParsedRequest.ProtoReflect.Descriptor instead.
func (*ImportParsedRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{18}
}

func (x *ImportParsedRequest) GetFieldsJson() []byte {
	if x != nil {
		return x.FieldsJson
	}
	return nil
}

func (x *ImportParsedRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type ImportParsedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	NaturalKey    string                 `protobuf:"bytes,2,opt,name=natural_key,json=naturalKey,proto3" json:"natural_key,omitempty"` // contract_no or bid_number
	Deduplicated  bool                   `protobuf:"varint,3,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportParsedResponse) Reset() {
	*x = ImportParsedResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportParsedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportParsedResponse) ProtoMessage() {}

func (x *ImportParsedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportParsedResponse.ProtoReflect.Descriptor instead.
func (*ImportParsedResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{19}
}

func (x *ImportParsedResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ImportParsedResponse) GetNaturalKey() string {
	if x != nil {
		return x.NaturalKey
	}
	return ""
}

func (x *ImportParsedResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

type ParsePreviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParsePreviewRequest) Reset() {
	*x = ParsePreviewRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParsePreviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParsePreviewRequest) ProtoMessage() {}

func (x *ParsePreviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParsePreviewRequest.ProtoReflect.Descriptor instead.
func (*ParsePreviewRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{20}
}

func (x *ParsePreviewRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type ParsePreviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocType       string                 `protobuf:"bytes,1,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	FieldsJson    []byte                 `protobuf:"bytes,2,opt,name=fields_json,json=fieldsJson,proto3" json:"fields_json,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,3,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParsePreviewResponse) Reset() {
	*x = ParsePreviewResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParsePreviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParsePreviewResponse) ProtoMessage() {}

func (x *ParsePreviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParsePreviewResponse.ProtoReflect.Descriptor instead.
func (*ParsePreviewResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{21}
}

func (x *ParsePreviewResponse) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *ParsePreviewResponse) GetFieldsJson() []byte {
	if x != nil {
		return x.FieldsJson
	}
	return nil
}

func (x *ParsePreviewResponse) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

type Bid struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	Id                     string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	BidNumber              string                 `protobuf:"bytes,2,opt,name=bid_number,json=bidNumber,proto3" json:"bid_number,omitempty"`
	Dated                  string                 `protobuf:"bytes,3,opt,name=dated,proto3" json:"dated,omitempty"` // YYYY-MM-DD
	Beneficiary            string                 `protobuf:"bytes,4,opt,name=beneficiary,proto3" json:"beneficiary,omitempty"`
	Ministry               string                 `protobuf:"bytes,5,opt,name=ministry,proto3" json:"ministry,omitempty"`
	Department             string                 `protobuf:"bytes,6,opt,name=department,proto3" json:"department,omitempty"`
	Organisation           string                 `protobuf:"bytes,7,opt,name=organisation,proto3" json:"organisation,omitempty"`
	OfficeName             string                 `protobuf:"bytes,8,opt,name=office_name,json=officeName,proto3" json:"office_name,omitempty"`
	ItemCategory           string                 `protobuf:"bytes,9,opt,name=item_category,json=itemCategory,proto3" json:"item_category,omitempty"`
	ContractPeriod         string                 `protobuf:"bytes,10,opt,name=contract_period,json=contractPeriod,proto3" json:"contract_period,omitempty"`
	BidEndDatetime         string                 `protobuf:"bytes,11,opt,name=bid_end_datetime,json=bidEndDatetime,proto3" json:"bid_end_datetime,omitempty"`    // RFC3339
	BidOpenDatetime        string                 `protobuf:"bytes,12,opt,name=bid_open_datetime,json=bidOpenDatetime,proto3" json:"bid_open_datetime,omitempty"` // RFC3339
	BidOfferValidityDays   int32                  `protobuf:"varint,13,opt,name=bid_offer_validity_days,json=bidOfferValidityDays,proto3" json:"bid_offer_validity_days,omitempty"`
	DeliveryDays           int32                  `protobuf:"varint,14,opt,name=delivery_days,json=deliveryDays,proto3" json:"delivery_days,omitempty"`
	TotalQuantity          string                 `protobuf:"bytes,15,opt,name=total_quantity,json=totalQuantity,proto3" json:"total_quantity,omitempty"`
	EstimatedBidValue      string                 `protobuf:"bytes,16,opt,name=estimated_bid_value,json=estimatedBidValue,proto3" json:"estimated_bid_value,omitempty"`
	SimilarCategory        string                 `protobuf:"bytes,17,opt,name=similar_category,json=similarCategory,proto3" json:"similar_category,omitempty"`
	MseExemption           string                 `protobuf:"bytes,18,opt,name=mse_exemption,json=mseExemption,proto3" json:"mse_exemption,omitempty"`
	StartupExemption       string                 `protobuf:"bytes,19,opt,name=startup_exemption,json=startupExemption,proto3" json:"startup_exemption,omitempty"`
	MsePurchasePreference  string                 `protobuf:"bytes,20,opt,name=mse_purchase_preference,json=msePurchasePreference,proto3" json:"mse_purchase_preference,omitempty"`
	MiiPurchasePreference  string                 `protobuf:"bytes,21,opt,name=mii_purchase_preference,json=miiPurchasePreference,proto3" json:"mii_purchase_preference,omitempty"`
	EvaluationMethod       string                 `protobuf:"bytes,22,opt,name=evaluation_method,json=evaluationMethod,proto3" json:"evaluation_method,omitempty"`
	InspectionRequired     string                 `protobuf:"bytes,23,opt,name=inspection_required,json=inspectionRequired,proto3" json:"inspection_required,omitempty"`
	PrimaryProductCategory string                 `protobuf:"bytes,24,opt,name=primary_product_category,json=primaryProductCategory,proto3" json:"primary_product_category,omitempty"`
	DeliveryAddress        string                 `protobuf:"bytes,25,opt,name=delivery_address,json=deliveryAddress,proto3" json:"delivery_address,omitempty"`
	ScopeOfSupply          string                 `protobuf:"bytes,26,opt,name=scope_of_supply,json=scopeOfSupply,proto3" json:"scope_of_supply,omitempty"`
	OptionClause           string                 `protobuf:"bytes,27,opt,name=option_clause,json=optionClause,proto3" json:"option_clause,omitempty"`
	SourceFile             string                 `protobuf:"bytes,28,opt,name=source_file,json=sourceFile,proto3" json:"source_file,omitempty"`
	HasEmbedding           bool                   `protobuf:"varint,29,opt,name=has_embedding,json=hasEmbedding,proto3" json:"has_embedding,omitempty"`
	CreatedAt              string                 `protobuf:"bytes,30,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt              string                 `protobuf:"bytes,31,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *Bid) Reset() {
	*x = Bid{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Bid) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Bid) ProtoMessage() {}

func (x *Bid) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Bid.ProtoReflect.Descriptor instead.
func (*Bid) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{22}
}

func (x *Bid) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Bid) GetBidNumber() string {
	if x != nil {
		return x.BidNumber
	}
	return ""
}

func (x *Bid) GetDated() string {
	if x != nil {
		return x.Dated
	}
	return ""
}

func (x *Bid) GetBeneficiary() string {
	if x != nil {
		return x.Beneficiary
	}
	return ""
}

func (x *Bid) GetMinistry() string {
	if x != nil {
		return x.Ministry
	}
	return ""
}

func (x *Bid) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *Bid) GetOrganisation() string {
	if x != nil {
		return x.Organisation
	}
	return ""
}

func (x *Bid) GetOfficeName() string {
	if x != nil {
		return x.OfficeName
	}
	return ""
}

func (x *Bid) GetItemCategory() string {
	if x != nil {
		return x.ItemCategory
	}
	return ""
}

func (x *Bid) GetContractPeriod() string {
	if x != nil {
		return x.ContractPeriod
	}
	return ""
}

func (x *Bid) GetBidEndDatetime() string {
	if x != nil {
		return x.BidEndDatetime
	}
	return ""
}

func (x *Bid) GetBidOpenDatetime() string {
	if x != nil {
		return x.BidOpenDatetime
	}
	return ""
}

func (x *Bid) GetBidOfferValidityDays() int32 {
	if x != nil {
		return x.BidOfferValidityDays
	}
	return 0
}

func (x *Bid) GetDeliveryDays() int32 {
	if x != nil {
		return x.DeliveryDays
	}
	return 0
}

func (x *Bid) GetTotalQuantity() string {
	if x != nil {
		return x.TotalQuantity
	}
	return ""
}

func (x *Bid) GetEstimatedBidValue() string {
	if x != nil {
		return x.EstimatedBidValue
	}
	return ""
}

func (x *Bid) GetSimilarCategory() string {
	if x != nil {
		return x.SimilarCategory
	}
	return ""
}

func (x *Bid) GetMseExemption() string {
	if x != nil {
		return x.MseExemption
	}
	return ""
}

func (x *Bid) GetStartupExemption() string {
	if x != nil {
		return x.StartupExemption
	}
	return ""
}

func (x *Bid) GetMsePurchasePreference() string {
	if x != nil {
		return x.MsePurchasePreference
	}
	return ""
}

func (x *Bid) GetMiiPurchasePreference() string {
	if x != nil {
		return x.MiiPurchasePreference
	}
	return ""
}

func (x *Bid) GetEvaluationMethod() string {
	if x != nil {
		return x.EvaluationMethod
	}
	return ""
}

func (x *Bid) GetInspectionRequired() string {
	if x != nil {
		return x.InspectionRequired
	}
	return ""
}

func (x *Bid) GetPrimaryProductCategory() string {
	if x != nil {
		return x.PrimaryProductCategory
	}
	return ""
}

func (x *Bid) GetDeliveryAddress() string {
	if x != nil {
		return x.DeliveryAddress
	}
	return ""
}

func (x *Bid) GetScopeOfSupply() string {
	if x != nil {
		return x.ScopeOfSupply
	}
	return ""
}

func (x *Bid) GetOptionClause() string {
	if x != nil {
		return x.OptionClause
	}
	return ""
}

func (x *Bid) GetSourceFile() string {
	if x != nil {
		return x.SourceFile
	}
	return ""
}

func (x *Bid) GetHasEmbedding() bool {
	if x != nil {
		return x.HasEmbedding
	}
	return false
}

func (x *Bid) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Bid) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListBidsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive (against dated)
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBidsRequest) Reset() {
	*x = ListBidsRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBidsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBidsRequest) ProtoMessage() {}

func (x *ListBidsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBidsRequest.ProtoReflect.Descriptor instead.
func (*ListBidsRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{23}
}

func (x *ListBidsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListBidsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListBidsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListBidsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListBidsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bids          []*Bid                 `protobuf:"bytes,1,rep,name=bids,proto3" json:"bids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBidsResponse) Reset() {
	*x = ListBidsResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBidsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBidsResponse) ProtoMessage() {}

func (x *ListBidsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBidsResponse.ProtoReflect.Descriptor instead.
func (*ListBidsResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{24}
}

func (x *ListBidsResponse) GetBids() []*Bid {
	if x != nil {
		return x.Bids
	}
	return nil
}

type GetBidRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BidNumber     string                 `protobuf:"bytes,1,opt,name=bid_number,json=bidNumber,proto3" json:"bid_number,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBidRequest) Reset() {
	*x = GetBidRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBidRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBidRequest) ProtoMessage() {}

func (x *GetBidRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBidRequest.ProtoReflect.Descriptor instead.
func (*GetBidRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{25}
}

func (x *GetBidRequest) GetBidNumber() string {
	if x != nil {
		return x.BidNumber
	}
	return ""
}

type GetBidResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bid           *Bid                   `protobuf:"bytes,1,opt,name=bid,proto3" json:"bid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBidResponse) Reset() {
	*x = GetBidResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBidResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBidResponse) ProtoMessage() {}

func (x *GetBidResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBidResponse.ProtoReflect.Descriptor instead.
func (*GetBidResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{26}
}

func (x *GetBidResponse) GetBid() *Bid {
	if x != nil {
		return x.Bid
	}
	return nil
}

type KeywordSearchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Keywords      string                 `protobuf:"bytes,1,opt,name=keywords,proto3" json:"keywords,omitempty"`                     // comma-separated, OR semantics
	MinFields     int32                  `protobuf:"varint,2,opt,name=min_fields,json=minFields,proto3" json:"min_fields,omitempty"` // completeness floor, default 5
	Kind          string                 `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`                             // contract | bid | empty for both
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KeywordSearchRequest) Reset() {
	*x = KeywordSearchRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KeywordSearchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KeywordSearchRequest) ProtoMessage() {}

func (x *KeywordSearchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KeywordSearchRequest.ProtoReflect.Descriptor instead.
func (*KeywordSearchRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{27}
}

func (x *KeywordSearchRequest) GetKeywords() string {
	if x != nil {
		return x.Keywords
	}
	return ""
}

func (x *KeywordSearchRequest) GetMinFields() int32 {
	if x != nil {
		return x.MinFields
	}
	return 0
}

func (x *KeywordSearchRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

type KeywordSearchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contracts     []*ContractRecord      `protobuf:"bytes,1,rep,name=contracts,proto3" json:"contracts,omitempty"`
	Bids          []*Bid                 `protobuf:"bytes,2,rep,name=bids,proto3" json:"bids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KeywordSearchResponse) Reset() {
	*x = KeywordSearchResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KeywordSearchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KeywordSearchResponse) ProtoMessage() {}

func (x *KeywordSearchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KeywordSearchResponse.ProtoReflect.Descriptor instead.
func (*KeywordSearchResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{28}
}

func (x *KeywordSearchResponse) GetContracts() []*ContractRecord {
	if x != nil {
		return x.Contracts
	}
	return nil
}

func (x *KeywordSearchResponse) GetBids() []*Bid {
	if x != nil {
		return x.Bids
	}
	return nil
}

type SemanticSearchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	TopK          int32                  `protobuf:"varint,2,opt,name=top_k,json=topK,proto3" json:"top_k,omitempty"` // default 10
	Kinds         []string               `protobuf:"bytes,3,rep,name=kinds,proto3" json:"kinds,omitempty"`            // contract | product | bid
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SemanticSearchRequest) Reset() {
	*x = SemanticSearchRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SemanticSearchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SemanticSearchRequest) ProtoMessage() {}

func (x *SemanticSearchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SemanticSearchRequest.ProtoReflect.Descriptor instead.
func (*SemanticSearchRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{29}
}

func (x *SemanticSearchRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SemanticSearchRequest) GetTopK() int32 {
	if x != nil {
		return x.TopK
	}
	return 0
}

func (x *SemanticSearchRequest) GetKinds() []string {
	if x != nil {
		return x.Kinds
	}
	return nil
}

type SemanticHit struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Kind          string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	Ref           string                 `protobuf:"bytes,3,opt,name=ref,proto3" json:"ref,omitempty"`       // contract number, product name or bid number
	Score         float64                `protobuf:"fixed64,4,opt,name=score,proto3" json:"score,omitempty"` // dot product in [-1, 1]
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SemanticHit) Reset() {
	*x = SemanticHit{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SemanticHit) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SemanticHit) ProtoMessage() {}

func (x *SemanticHit) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SemanticHit.ProtoReflect.Descriptor instead.
func (*SemanticHit) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{30}
}

func (x *SemanticHit) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SemanticHit) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *SemanticHit) GetRef() string {
	if x != nil {
		return x.Ref
	}
	return ""
}

func (x *SemanticHit) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

type SemanticSearchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Hits          []*SemanticHit         `protobuf:"bytes,1,rep,name=hits,proto3" json:"hits,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SemanticSearchResponse) Reset() {
	*x = SemanticSearchResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SemanticSearchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SemanticSearchResponse) ProtoMessage() {}

func (x *SemanticSearchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SemanticSearchResponse.ProtoReflect.Descriptor instead.
func (*SemanticSearchResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{31}
}

func (x *SemanticSearchResponse) GetHits() []*SemanticHit {
	if x != nil {
		return x.Hits
	}
	return nil
}

type ExportContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractNo    string                 `protobuf:"bytes,1,opt,name=contract_no,json=contractNo,proto3" json:"contract_no,omitempty"`
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"` // xlsx (default) | json
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractRequest) Reset() {
	*x = ExportContractRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractRequest) ProtoMessage() {}

func (x *ExportContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractRequest.ProtoReflect.Descriptor instead.
func (*ExportContractRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{32}
}

func (x *ExportContractRequest) GetContractNo() string {
	if x != nil {
		return x.ContractNo
	}
	return ""
}

func (x *ExportContractRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type ExportContractsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractsRequest) Reset() {
	*x = ExportContractsRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractsRequest) ProtoMessage() {}

func (x *ExportContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractsRequest.ProtoReflect.Descriptor instead.
func (*ExportContractsRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{33}
}

func (x *ExportContractsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportContractsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportContractsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ExportContractsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ExportBidRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BidNumber     string                 `protobuf:"bytes,1,opt,name=bid_number,json=bidNumber,proto3" json:"bid_number,omitempty"`
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"` // xlsx (default) | json
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBidRequest) Reset() {
	*x = ExportBidRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBidRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBidRequest) ProtoMessage() {}

func (x *ExportBidRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBidRequest.ProtoReflect.Descriptor instead.
func (*ExportBidRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{34}
}

func (x *ExportBidRequest) GetBidNumber() string {
	if x != nil {
		return x.BidNumber
	}
	return ""
}

func (x *ExportBidRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type ExportBidsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBidsRequest) Reset() {
	*x = ExportBidsRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBidsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBidsRequest) ProtoMessage() {}

func (x *ExportBidsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBidsRequest.ProtoReflect.Descriptor instead.
func (*ExportBidsRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{35}
}

func (x *ExportBidsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportBidsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportBidsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ExportBidsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ExportFilteredReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Keywords      string                 `protobuf:"bytes,1,opt,name=keywords,proto3" json:"keywords,omitempty"` // comma-separated; empty uses the default list
	MinFields     int32                  `protobuf:"varint,2,opt,name=min_fields,json=minFields,proto3" json:"min_fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportFilteredReportRequest) Reset() {
	*x = ExportFilteredReportRequest{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportFilteredReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportFilteredReportRequest) ProtoMessage() {}

func (x *ExportFilteredReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportFilteredReportRequest.ProtoReflect.Descriptor instead.
func (*ExportFilteredReportRequest) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{36}
}

func (x *ExportFilteredReportRequest) GetKeywords() string {
	if x != nil {
		return x.Keywords
	}
	return ""
}

func (x *ExportFilteredReportRequest) GetMinFields() int32 {
	if x != nil {
		return x.MinFields
	}
	return 0
}

type ExportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          []byte                 `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResponse) Reset() {
	*x = ExportResponse{}
	mi := &file_procurement_v1_procurement_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResponse) ProtoMessage() {}

func (x *ExportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_procurement_v1_procurement_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResponse.ProtoReflect.Descriptor instead.
func (*ExportResponse) Descriptor() ([]byte, []int) {
	return file_procurement_v1_procurement_proto_rawDescGZIP(), []int{37}
}

func (x *ExportResponse) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *ExportResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_procurement_v1_procurement_proto protoreflect.FileDescriptor

const file_procurement_v1_procurement_proto_rawDesc = "" +
	"\n" +
	" procurement/v1/procurement.proto\x12\x0eprocurement.v1\"\x85\x01\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x19\n" +
	"\bdoc_type\x18\x02 \x01(\tR\adocType\x12\x18\n" +
	"\aprocess\x18\x03 \x01(\bR\aprocess\x12'\n" +
	"\x0fskip_duplicates\x18\x04 \x01(\bR\x0eskipDuplicates\"\x85\x02\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x19\n" +
	"\bdoc_type\x18\x05 \x01(\tR\adocType\x12\x1f\n" +
	"\vuploaded_at\x18\x06 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\a \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\b \x01(\tR\x05error\"\xba\x01\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x19\n" +
	"\bdoc_type\x18\x02 \x01(\tR\adocType\x12%\n" +
	"\x0einclude_hidden\x18\x03 \x01(\bR\rincludeHidden\x12\x18\n" +
	"\aprocess\x18\x04 \x01(\bR\aprocess\x12'\n" +
	"\x0fskip_duplicates\x18\x05 \x01(\bR\x0eskipDuplicates\"\xe1\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x128\n" +
	"\aresults\x18\x06 \x03(\v2\x1e.procurement.v1.IngestResponseR\aresults\"\xc5\x01\n" +
	"\bContract\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcontract_no\x18\x02 \x01(\tR\n" +
	"contractNo\x12%\n" +
	"\x0egenerated_date\x18\x03 \x01(\tR\rgeneratedDate\x12#\n" +
	"\rhas_embedding\x18\x04 \x01(\bR\fhasEmbedding\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\xb2\x01\n" +
	"\x12OrganisationDetail\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x1a\n" +
	"\bministry\x18\x02 \x01(\tR\bministry\x12\x1e\n" +
	"\n" +
	"department\x18\x03 \x01(\tR\n" +
	"department\x12+\n" +
	"\x11organisation_name\x18\x04 \x01(\tR\x10organisationName\x12\x1f\n" +
	"\voffice_zone\x18\x05 \x01(\tR\n" +
	"officeZone\"\x94\x01\n" +
	"\vBuyerDetail\x12 \n" +
	"\vdesignation\x18\x01 \x01(\tR\vdesignation\x12\x1d\n" +
	"\n" +
	"contact_no\x18\x02 \x01(\tR\tcontactNo\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x14\n" +
	"\x05gstin\x18\x04 \x01(\tR\x05gstin\x12\x18\n" +
	"\aaddress\x18\x05 \x01(\tR\aaddress\"\xc0\x01\n" +
	"\x11FinancialApproval\x12'\n" +
	"\x0fifd_concurrence\x18\x01 \x01(\bR\x0eifdConcurrence\x12<\n" +
	"\x1aadmin_approval_designation\x18\x02 \x01(\tR\x18adminApprovalDesignation\x12D\n" +
	"\x1efinancial_approval_designation\x18\x03 \x01(\tR\x1cfinancialApprovalDesignation\"\xb0\x01\n" +
	"\x0fPayingAuthority\x12\x12\n" +
	"\x04role\x18\x01 \x01(\tR\x04role\x12!\n" +
	"\fpayment_mode\x18\x02 \x01(\tR\vpaymentMode\x12 \n" +
	"\vdesignation\x18\x03 \x01(\tR\vdesignation\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x14\n" +
	"\x05gstin\x18\x05 \x01(\tR\x05gstin\x12\x18\n" +
	"\aaddress\x18\x06 \x01(\tR\aaddress\"\xf4\x01\n" +
	"\fSellerDetail\x12\"\n" +
	"\rgem_seller_id\x18\x01 \x01(\tR\vgemSellerId\x12!\n" +
	"\fcompany_name\x18\x02 \x01(\tR\vcompanyName\x12\x1d\n" +
	"\n" +
	"contact_no\x18\x03 \x01(\tR\tcontactNo\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x18\n" +
	"\aaddress\x18\x05 \x01(\tR\aaddress\x128\n" +
	"\x18msme_registration_number\x18\x06 \x01(\tR\x16msmeRegistrationNumber\x12\x14\n" +
	"\x05gstin\x18\a \x01(\tR\x05gstin\"c\n" +
	"\x14ProductSpecification\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x19\n" +
	"\bsub_spec\x18\x02 \x01(\tR\asubSpec\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\"\xc4\x02\n" +
	"\x0fConsigneeDetail\x12\x11\n" +
	"\x04s_no\x18\x01 \x01(\x05R\x03sNo\x12 \n" +
	"\vdesignation\x18\x02 \x01(\tR\vdesignation\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x18\n" +
	"\acontact\x18\x04 \x01(\tR\acontact\x12\x14\n" +
	"\x05gstin\x18\x05 \x01(\tR\x05gstin\x12\x18\n" +
	"\aaddress\x18\x06 \x01(\tR\aaddress\x12\x15\n" +
	"\x06lot_no\x18\a \x01(\tR\x05lotNo\x12\x1a\n" +
	"\bquantity\x18\b \x01(\x05R\bquantity\x12%\n" +
	"\x0edelivery_start\x18\t \x01(\tR\rdeliveryStart\x12!\n" +
	"\fdelivery_end\x18\n" +
	" \x01(\tR\vdeliveryEnd\x12\x1f\n" +
	"\vdelivery_to\x18\v \x01(\tR\n" +
	"deliveryTo\"\xed\x04\n" +
	"\aProduct\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fproduct_name\x18\x02 \x01(\tR\vproductName\x12\x14\n" +
	"\x05brand\x18\x03 \x01(\tR\x05brand\x12\x1d\n" +
	"\n" +
	"brand_type\x18\x04 \x01(\tR\tbrandType\x12)\n" +
	"\x10catalogue_status\x18\x05 \x01(\tR\x0fcatalogueStatus\x12\x1d\n" +
	"\n" +
	"selling_as\x18\x06 \x01(\tR\tsellingAs\x124\n" +
	"\x16category_name_quadrant\x18\a \x01(\tR\x14categoryNameQuadrant\x12\x14\n" +
	"\x05model\x18\b \x01(\tR\x05model\x12\x19\n" +
	"\bhsn_code\x18\t \x01(\tR\ahsnCode\x12)\n" +
	"\x10ordered_quantity\x18\n" +
	" \x01(\tR\x0forderedQuantity\x12\x12\n" +
	"\x04unit\x18\v \x01(\tR\x04unit\x12\x1d\n" +
	"\n" +
	"unit_price\x18\f \x01(\tR\tunitPrice\x12'\n" +
	"\x0ftax_bifurcation\x18\r \x01(\tR\x0etaxBifurcation\x12\x1f\n" +
	"\vtotal_price\x18\x0e \x01(\tR\n" +
	"totalPrice\x12\x12\n" +
	"\x04note\x18\x0f \x01(\tR\x04note\x12L\n" +
	"\x0especifications\x18\x10 \x03(\v2$.procurement.v1.ProductSpecificationR\x0especifications\x12?\n" +
	"\n" +
	"consignees\x18\x11 \x03(\v2\x1f.procurement.v1.ConsigneeDetailR\n" +
	"consignees\"\x81\x04\n" +
	"\x0eContractRecord\x124\n" +
	"\bcontract\x18\x01 \x01(\v2\x18.procurement.v1.ContractR\bcontract\x12F\n" +
	"\forganisation\x18\x02 \x01(\v2\".procurement.v1.OrganisationDetailR\forganisation\x121\n" +
	"\x05buyer\x18\x03 \x01(\v2\x1b.procurement.v1.BuyerDetailR\x05buyer\x12P\n" +
	"\x12financial_approval\x18\x04 \x01(\v2!.procurement.v1.FinancialApprovalR\x11financialApproval\x12J\n" +
	"\x10paying_authority\x18\x05 \x01(\v2\x1f.procurement.v1.PayingAuthorityR\x0fpayingAuthority\x124\n" +
	"\x06seller\x18\x06 \x01(\v2\x1c.procurement.v1.SellerDetailR\x06seller\x12\x1f\n" +
	"\vepbg_detail\x18\a \x01(\tR\n" +
	"epbgDetail\x123\n" +
	"\bproducts\x18\b \x03(\v2\x17.procurement.v1.ProductR\bproducts\x12\x14\n" +
	"\x05terms\x18\t \x03(\tR\x05terms\"z\n" +
	"\x14ListContractsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\"O\n" +
	"\x15ListContractsResponse\x126\n" +
	"\tcontracts\x18\x01 \x03(\v2\x18.procurement.v1.ContractR\tcontracts\"5\n" +
	"\x12GetContractRequest\x12\x1f\n" +
	"\vcontract_no\x18\x01 \x01(\tR\n" +
	"contractNo\"M\n" +
	"\x13GetContractResponse\x126\n" +
	"\x06record\x18\x01 \x01(\v2\x1e.procurement.v1.ContractRecordR\x06record\"Q\n" +
	"\x13ImportParsedRequest\x12\x1f\n" +
	"\vfields_json\x18\x01 \x01(\fR\n" +
	"fieldsJson\x12\x19\n" +
	"\braw_text\x18\x02 \x01(\tR\arawText\"k\n" +
	"\x14ImportParsedResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vnatural_key\x18\x02 \x01(\tR\n" +
	"naturalKey\x12\"\n" +
	"\fdeduplicated\x18\x03 \x01(\bR\fdeduplicated\")\n" +
	"\x13ParsePreviewRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"u\n" +
	"\x14ParsePreviewResponse\x12\x19\n" +
	"\bdoc_type\x18\x01 \x01(\tR\adocType\x12\x1f\n" +
	"\vfields_json\x18\x02 \x01(\fR\n" +
	"fieldsJson\x12!\n" +
	"\fneeds_review\x18\x03 \x01(\bR\vneedsReview\"\xc5\t\n" +
	"\x03Bid\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"bid_number\x18\x02 \x01(\tR\tbidNumber\x12\x14\n" +
	"\x05dated\x18\x03 \x01(\tR\x05dated\x12 \n" +
	"\vbeneficiary\x18\x04 \x01(\tR\vbeneficiary\x12\x1a\n" +
	"\bministry\x18\x05 \x01(\tR\bministry\x12\x1e\n" +
	"\n" +
	"department\x18\x06 \x01(\tR\n" +
	"department\x12\"\n" +
	"\forganisation\x18\a \x01(\tR\forganisation\x12\x1f\n" +
	"\voffice_name\x18\b \x01(\tR\n" +
	"officeName\x12#\n" +
	"\ritem_category\x18\t \x01(\tR\fitemCategory\x12'\n" +
	"\x0fcontract_period\x18\n" +
	" \x01(\tR\x0econtractPeriod\x12(\n" +
	"\x10bid_end_datetime\x18\v \x01(\tR\x0ebidEndDatetime\x12*\n" +
	"\x11bid_open_datetime\x18\f \x01(\tR\x0fbidOpenDatetime\x125\n" +
	"\x17bid_offer_validity_days\x18\r \x01(\x05R\x14bidOfferValidityDays\x12#\n" +
	"\rdelivery_days\x18\x0e \x01(\x05R\fdeliveryDays\x12%\n" +
	"\x0etotal_quantity\x18\x0f \x01(\tR\rtotalQuantity\x12.\n" +
	"\x13estimated_bid_value\x18\x10 \x01(\tR\x11estimatedBidValue\x12)\n" +
	"\x10similar_category\x18\x11 \x01(\tR\x0fsimilarCategory\x12#\n" +
	"\rmse_exemption\x18\x12 \x01(\tR\fmseExemption\x12+\n" +
	"\x11startup_exemption\x18\x13 \x01(\tR\x10startupExemption\x126\n" +
	"\x17mse_purchase_preference\x18\x14 \x01(\tR\x15msePurchasePreference\x126\n" +
	"\x17mii_purchase_preference\x18\x15 \x01(\tR\x15miiPurchasePreference\x12+\n" +
	"\x11evaluation_method\x18\x16 \x01(\tR\x10evaluationMethod\x12/\n" +
	"\x13inspection_required\x18\x17 \x01(\tR\x12inspectionRequired\x128\n" +
	"\x18primary_product_category\x18\x18 \x01(\tR\x16primaryProductCategory\x12)\n" +
	"\x10delivery_address\x18\x19 \x01(\tR\x0fdeliveryAddress\x12&\n" +
	"\x0fscope_of_supply\x18\x1a \x01(\tR\rscopeOfSupply\x12#\n" +
	"\roption_clause\x18\x1b \x01(\tR\foptionClause\x12\x1f\n" +
	"\vsource_file\x18\x1c \x01(\tR\n" +
	"sourceFile\x12#\n" +
	"\rhas_embedding\x18\x1d \x01(\bR\fhasEmbedding\x12\x1d\n" +
	"\n" +
	"created_at\x18\x1e \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x1f \x01(\tR\tupdatedAt\"u\n" +
	"\x0fListBidsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\";\n" +
	"\x10ListBidsResponse\x12'\n" +
	"\x04bids\x18\x01 \x03(\v2\x13.procurement.v1.BidR\x04bids\".\n" +
	"\rGetBidRequest\x12\x1d\n" +
	"\n" +
	"bid_number\x18\x01 \x01(\tR\tbidNumber\"7\n" +
	"\x0eGetBidResponse\x12%\n" +
	"\x03bid\x18\x01 \x01(\v2\x13.procurement.v1.BidR\x03bid\"e\n" +
	"\x14KeywordSearchRequest\x12\x1a\n" +
	"\bkeywords\x18\x01 \x01(\tR\bkeywords\x12\x1d\n" +
	"\n" +
	"min_fields\x18\x02 \x01(\x05R\tminFields\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\"~\n" +
	"\x15KeywordSearchResponse\x12<\n" +
	"\tcontracts\x18\x01 \x03(\v2\x1e.procurement.v1.ContractRecordR\tcontracts\x12'\n" +
	"\x04bids\x18\x02 \x03(\v2\x13.procurement.v1.BidR\x04bids\"X\n" +
	"\x15SemanticSearchRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x13\n" +
	"\x05top_k\x18\x02 \x01(\x05R\x04topK\x12\x14\n" +
	"\x05kinds\x18\x03 \x03(\tR\x05kinds\"Y\n" +
	"\vSemanticHit\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12\x10\n" +
	"\x03ref\x18\x03 \x01(\tR\x03ref\x12\x14\n" +
	"\x05score\x18\x04 \x01(\x01R\x05score\"I\n" +
	"\x16SemanticSearchResponse\x12/\n" +
	"\x04hits\x18\x01 \x03(\v2\x1b.procurement.v1.SemanticHitR\x04hits\"P\n" +
	"\x15ExportContractRequest\x12\x1f\n" +
	"\vcontract_no\x18\x01 \x01(\tR\n" +
	"contractNo\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\"|\n" +
	"\x16ExportContractsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\"I\n" +
	"\x10ExportBidRequest\x12\x1d\n" +
	"\n" +
	"bid_number\x18\x01 \x01(\tR\tbidNumber\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\"w\n" +
	"\x11ExportBidsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\"X\n" +
	"\x1bExportFilteredReportRequest\x12\x1a\n" +
	"\bkeywords\x18\x01 \x01(\tR\bkeywords\x12\x1d\n" +
	"\n" +
	"min_fields\x18\x02 \x01(\x05R\tminFields\"@\n" +
	"\x0eExportResponse\x12\x12\n" +
	"\x04data\x18\x01 \x01(\fR\x04data\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xc7\x01\n" +
	"\x10IngestionService\x12O\n" +
	"\n" +
	"IngestFile\x12!.procurement.v1.IngestFileRequest\x1a\x1e.procurement.v1.IngestResponse\x12b\n" +
	"\x0fIngestDirectory\x12&.procurement.v1.IngestDirectoryRequest\x1a'.procurement.v1.IngestDirectoryResponse2\xfe\x02\n" +
	"\x10ContractsService\x12\\\n" +
	"\rListContracts\x12$.procurement.v1.ListContractsRequest\x1a%.procurement.v1.ListContractsResponse\x12V\n" +
	"\vGetContract\x12\".procurement.v1.GetContractRequest\x1a#.procurement.v1.GetContractResponse\x12Y\n" +
	"\fImportParsed\x12#.procurement.v1.ImportParsedRequest\x1a$.procurement.v1.ImportParsedResponse\x12Y\n" +
	"\fParsePreview\x12#.procurement.v1.ParsePreviewRequest\x1a$.procurement.v1.ParsePreviewResponse2\xdb\x02\n" +
	"\vBidsService\x12M\n" +
	"\bListBids\x12\x1f.procurement.v1.ListBidsRequest\x1a .procurement.v1.ListBidsResponse\x12G\n" +
	"\x06GetBid\x12\x1d.procurement.v1.GetBidRequest\x1a\x1e.procurement.v1.GetBidResponse\x12Y\n" +
	"\fImportParsed\x12#.procurement.v1.ImportParsedRequest\x1a$.procurement.v1.ImportParsedResponse\x12Y\n" +
	"\fParsePreview\x12#.procurement.v1.ParsePreviewRequest\x1a$.procurement.v1.ParsePreviewResponse2\xce\x01\n" +
	"\rSearchService\x12\\\n" +
	"\rKeywordSearch\x12$.procurement.v1.KeywordSearchRequest\x1a%.procurement.v1.KeywordSearchResponse\x12_\n" +
	"\x0eSemanticSearch\x12%.procurement.v1.SemanticSearchRequest\x1a&.procurement.v1.SemanticSearchResponse2\xc8\x03\n" +
	"\rExportService\x12W\n" +
	"\x0eExportContract\x12%.procurement.v1.ExportContractRequest\x1a\x1e.procurement.v1.ExportResponse\x12Y\n" +
	"\x0fExportContracts\x12&.procurement.v1.ExportContractsRequest\x1a\x1e.procurement.v1.ExportResponse\x12M\n" +
	"\tExportBid\x12 .procurement.v1.ExportBidRequest\x1a\x1e.procurement.v1.ExportResponse\x12O\n" +
	"\n" +
	"ExportBids\x12!.procurement.v1.ExportBidsRequest\x1a\x1e.procurement.v1.ExportResponse\x12c\n" +
	"\x14ExportFilteredReport\x12+.procurement.v1.ExportFilteredReportRequest\x1a\x1e.procurement.v1.ExportResponseBOZMgithub.com/gemdocs/procurement-tracker/gen/proto/procurement/v1;procurementv1b\x06proto3"

var (
	file_procurement_v1_procurement_proto_rawDescOnce sync.Once
	file_procurement_v1_procurement_proto_rawDescData []byte
)

func file_procurement_v1_procurement_proto_rawDescGZIP() []byte {
	file_procurement_v1_procurement_proto_rawDescOnce.Do(func() {
		file_procurement_v1_procurement_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_procurement_v1_procurement_proto_rawDesc), len(file_procurement_v1_procurement_proto_rawDesc)))
	})
	return file_procurement_v1_procurement_proto_rawDescData
}

var file_procurement_v1_procurement_proto_msgTypes = make([]protoimpl.MessageInfo, 38)
var file_procurement_v1_procurement_proto_goTypes = []any{
	(*IngestFileRequest)(nil),           // 0: procurement.v1.IngestFileRequest
	(*IngestResponse)(nil),              // 1: procurement.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),      // 2: procurement.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),     // 3: procurement.v1.IngestDirectoryResponse
	(*Contract)(nil),                    // 4: procurement.v1.Contract
	(*OrganisationDetail)(nil),          // 5: procurement.v1.OrganisationDetail
	(*BuyerDetail)(nil),                 // 6: procurement.v1.BuyerDetail
	(*FinancialApproval)(nil),           // 7: procurement.v1.FinancialApproval
	(*PayingAuthority)(nil),             // 8: procurement.v1.PayingAuthority
	(*SellerDetail)(nil),                // 9: procurement.v1.SellerDetail
	(*ProductSpecification)(nil),        // 10: procurement.v1.ProductSpecification
	(*ConsigneeDetail)(nil),             // 11: procurement.v1.ConsigneeDetail
	(*Product)(nil),                     // 12: procurement.v1.Product
	(*ContractRecord)(nil),              // 13: procurement.v1.ContractRecord
	(*ListContractsRequest)(nil),        // 14: procurement.v1.ListContractsRequest
	(*ListContractsResponse)(nil),       // 15: procurement.v1.ListContractsResponse
	(*GetContractRequest)(nil),          // 16: procurement.v1.GetContractRequest
	(*GetContractResponse)(nil),         // 17: procurement.v1.GetContractResponse
	(*ImportParsedRequest)(nil),         // 18: procurement.v1.ImportParsedRequest
	(*ImportParsedResponse)(nil),        // 19: procurement.v1.ImportParsedResponse
	(*ParsePreviewRequest)(nil),         // 20: procurement.v1.ParsePreviewRequest
	(*ParsePreviewResponse)(nil),        // 21: procurement.v1.ParsePreviewResponse
	(*Bid)(nil),                         // 22: procurement.v1.Bid
	(*ListBidsRequest)(nil),             // 23: procurement.v1.ListBidsRequest
	(*ListBidsResponse)(nil),            // 24: procurement.v1.ListBidsResponse
	(*GetBidRequest)(nil),               // 25: procurement.v1.GetBidRequest
	(*GetBidResponse)(nil),              // 26: procurement.v1.GetBidResponse
	(*KeywordSearchRequest)(nil),        // 27: procurement.v1.KeywordSearchRequest
	(*KeywordSearchResponse)(nil),       // 28: procurement.v1.KeywordSearchResponse
	(*SemanticSearchRequest)(nil),       // 29: procurement.v1.SemanticSearchRequest
	(*SemanticHit)(nil),                 // 30: procurement.v1.SemanticHit
	(*SemanticSearchResponse)(nil),      // 31: procurement.v1.SemanticSearchResponse
	(*ExportContractRequest)(nil),       // 32: procurement.v1.ExportContractRequest
	(*ExportContractsRequest)(nil),      // 33: procurement.v1.ExportContractsRequest
	(*ExportBidRequest)(nil),            // 34: procurement.v1.ExportBidRequest
	(*ExportBidsRequest)(nil),           // 35: procurement.v1.ExportBidsRequest
	(*ExportFilteredReportRequest)(nil), // 36: procurement.v1.ExportFilteredReportRequest
	(*ExportResponse)(nil),              // 37: procurement.v1.ExportResponse
}
var file_procurement_v1_procurement_proto_depIdxs = []int32{
	1,  // 0: procurement.v1.IngestDirectoryResponse.results:type_name -> procurement.v1.IngestResponse
	10, // 1: procurement.v1.Product.specifications:type_name -> procurement.v1.ProductSpecification
	11, // 2: procurement.v1.Product.consignees:type_name -> procurement.v1.ConsigneeDetail
	4,  // 3: procurement.v1.ContractRecord.contract:type_name -> procurement.v1.Contract
	5,  // 4: procurement.v1.ContractRecord.organisation:type_name -> procurement.v1.OrganisationDetail
	6,  // 5: procurement.v1.ContractRecord.buyer:type_name -> procurement.v1.BuyerDetail
	7,  // 6: procurement.v1.ContractRecord.financial_approval:type_name -> procurement.v1.FinancialApproval
	8,  // 7: procurement.v1.ContractRecord.paying_authority:type_name -> procurement.v1.PayingAuthority
	9,  // 8: procurement.v1.ContractRecord.seller:type_name -> procurement.v1.SellerDetail
	12, // 9: procurement.v1.ContractRecord.products:type_name -> procurement.v1.Product
	4,  // 10: procurement.v1.ListContractsResponse.contracts:type_name -> procurement.v1.Contract
	13, // 11: procurement.v1.GetContractResponse.record:type_name -> procurement.v1.ContractRecord
	22, // 12: procurement.v1.ListBidsResponse.bids:type_name -> procurement.v1.Bid
	22, // 13: procurement.v1.GetBidResponse.bid:type_name -> procurement.v1.Bid
	13, // 14: procurement.v1.KeywordSearchResponse.contracts:type_name -> procurement.v1.ContractRecord
	22, // 15: procurement.v1.KeywordSearchResponse.bids:type_name -> procurement.v1.Bid
	30, // 16: procurement.v1.SemanticSearchResponse.hits:type_name -> procurement.v1.SemanticHit
	0,  // 17: procurement.v1.IngestionService.IngestFile:input_type -> procurement.v1.IngestFileRequest
	2,  // 18: procurement.v1.IngestionService.IngestDirectory:input_type -> procurement.v1.IngestDirectoryRequest
	14, // 19: procurement.v1.ContractsService.ListContracts:input_type -> procurement.v1.ListContractsRequest
	16, // 20: procurement.v1.ContractsService.GetContract:input_type -> procurement.v1.GetContractRequest
	18, // 21: procurement.v1.ContractsService.ImportParsed:input_type -> procurement.v1.ImportParsedRequest
	20, // 22: procurement.v1.ContractsService.ParsePreview:input_type -> procurement.v1.ParsePreviewRequest
	23, // 23: procurement.v1.BidsService.ListBids:input_type -> procurement.v1.ListBidsRequest
	25, // 24: procurement.v1.BidsService.GetBid:input_type -> procurement.v1.GetBidRequest
	18, // 25: procurement.v1.BidsService.ImportParsed:input_type -> procurement.v1.ImportParsedRequest
	20, // 26: procurement.v1.BidsService.ParsePreview:input_type -> procurement.v1.ParsePreviewRequest
	27, // 27: procurement.v1.SearchService.KeywordSearch:input_type -> procurement.v1.KeywordSearchRequest
	29, // 28: procurement.v1.SearchService.SemanticSearch:input_type -> procurement.v1.SemanticSearchRequest
	32, // 29: procurement.v1.ExportService.ExportContract:input_type -> procurement.v1.ExportContractRequest
	33, // 30: procurement.v1.ExportService.ExportContracts:input_type -> procurement.v1.ExportContractsRequest
	34, // 31: procurement.v1.ExportService.ExportBid:input_type -> procurement.v1.ExportBidRequest
	35, // 32: procurement.v1.ExportService.ExportBids:input_type -> procurement.v1.ExportBidsRequest
	36, // 33: procurement.v1.ExportService.ExportFilteredReport:input_type -> procurement.v1.ExportFilteredReportRequest
	1,  // 34: procurement.v1.IngestionService.IngestFile:output_type -> procurement.v1.IngestResponse
	3,  // 35: procurement.v1.IngestionService.IngestDirectory:output_type -> procurement.v1.IngestDirectoryResponse
	15, // 36: procurement.v1.ContractsService.ListContracts:output_type -> procurement.v1.ListContractsResponse
	17, // 37: procurement.v1.ContractsService.GetContract:output_type -> procurement.v1.GetContractResponse
	19, // 38: procurement.v1.ContractsService.ImportParsed:output_type -> procurement.v1.ImportParsedResponse
	21, // 39: procurement.v1.ContractsService.ParsePreview:output_type -> procurement.v1.ParsePreviewResponse
	24, // 40: procurement.v1.BidsService.ListBids:output_type -> procurement.v1.ListBidsResponse
	26, // 41: procurement.v1.BidsService.GetBid:output_type -> procurement.v1.GetBidResponse
	19, // 42: procurement.v1.BidsService.ImportParsed:output_type -> procurement.v1.ImportParsedResponse
	21, // 43: procurement.v1.BidsService.ParsePreview:output_type -> procurement.v1.ParsePreviewResponse
	28, // 44: procurement.v1.SearchService.KeywordSearch:output_type -> procurement.v1.KeywordSearchResponse
	31, // 45: procurement.v1.SearchService.SemanticSearch:output_type -> procurement.v1.SemanticSearchResponse
	37, // 46: procurement.v1.ExportService.ExportContract:output_type -> procurement.v1.ExportResponse
	37, // 47: procurement.v1.ExportService.ExportContracts:output_type -> procurement.v1.ExportResponse
	37, // 48: procurement.v1.ExportService.ExportBid:output_type -> procurement.v1.ExportResponse
	37, // 49: procurement.v1.ExportService.ExportBids:output_type -> procurement.v1.ExportResponse
	37, // 50: procurement.v1.ExportService.ExportFilteredReport:output_type -> procurement.v1.ExportResponse
	34, // [34:51] is the sub-list for method output_type
	17, // [17:34] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_procurement_v1_procurement_proto_init() }
func file_procurement_v1_procurement_proto_init() {
	if File_procurement_v1_procurement_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_procurement_v1_procurement_proto_rawDesc), len(file_procurement_v1_procurement_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   38,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_procurement_v1_procurement_proto_goTypes,
		DependencyIndexes: file_procurement_v1_procurement_proto_depIdxs,
		MessageInfos:      file_procurement_v1_procurement_proto_msgTypes,
	}.Build()
	File_procurement_v1_procurement_proto = out.File
	file_procurement_v1_procurement_proto_goTypes = nil
	file_procurement_v1_procurement_proto_depIdxs = nil
}
